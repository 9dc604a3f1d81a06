package catalog

// Static disease reference data for major Indian crops. Sourced from
// agricultural extension recommendations; costs are approximate INR per acre.
var diseaseData = []DiseaseRecord{
	{
		Key:             "tomato_early_blight",
		DiseaseName:     "Early Blight",
		HindiName:       "अगेती झुलसा",
		ScientificName:  "Alternaria solani",
		Crop:            "Tomato",
		CropHindi:       "टमाटर",
		Category:        "Fungal",
		TypicalSeverity: "moderate",
		Description:     "Dark brown to black spots with concentric rings (target-like pattern) appearing first on older lower leaves. Spots may coalesce and cause leaf drop.",
		DescriptionHindi: "गहरे भूरे से काले धब्बे जो संकेंद्रित वलयों (निशाने जैसा पैटर्न) के साथ पहले पुरानी निचली पत्तियों पर दिखाई देते हैं।",
		Symptoms: []string{
			"Dark spots with concentric rings on leaves",
			"Yellowing of leaves around spots",
			"Premature leaf drop starting from bottom",
			"Dark sunken spots on stems",
			"Fruit may show dark leathery spots at stem end",
		},
		Treatments: []Treatment{
			{Name: "Mancozeb 75% WP", Dosage: "2.5 grams per liter of water", Method: "Foliar spray", Frequency: "Every 7-10 days", CostPerAcre: 180},
			{Name: "Chlorothalonil 75% WP", Dosage: "2 grams per liter of water", Method: "Foliar spray", Frequency: "Every 10-14 days", CostPerAcre: 220},
			{Name: "Azoxystrobin 23% SC", Dosage: "1 ml per liter of water", Method: "Foliar spray", Frequency: "Every 14 days", CostPerAcre: 350},
		},
		OrganicTreatments: []string{
			"Neem oil spray (5ml/L water)",
			"Trichoderma viride (4g/L water) as preventive",
			"Copper oxychloride 50% WP (3g/L water)",
		},
		Prevention: []string{
			"Use disease-free certified seeds",
			"Practice 3-year crop rotation",
			"Remove and destroy infected plant debris",
			"Maintain proper plant spacing (60x45 cm)",
			"Avoid overhead irrigation",
			"Mulch around plants to prevent soil splash",
		},
		FavorableConditions: "Warm temperatures (24-29°C), high humidity, heavy dew, frequent rainfall",
		ImageKeywords:       []string{"concentric rings", "target spots", "brown spots", "leaf blight", "blight", "tomato"},
	},
	{
		Key:             "tomato_late_blight",
		DiseaseName:     "Late Blight",
		HindiName:       "पछेती झुलसा",
		ScientificName:  "Phytophthora infestans",
		Crop:            "Tomato",
		CropHindi:       "टमाटर",
		Category:        "Oomycete",
		TypicalSeverity: "severe",
		Description:     "Water-soaked, pale green to brown spots that rapidly enlarge. White fuzzy growth appears on leaf undersides in humid conditions. Entire plant can collapse within days.",
		DescriptionHindi: "पानी में भीगे, हल्के हरे से भूरे धब्बे जो तेजी से बढ़ते हैं। नमी में पत्तियों की निचली सतह पर सफेद रोएंदार वृद्धि दिखती है।",
		Symptoms: []string{
			"Water-soaked grayish-green spots on leaves",
			"White mold growth on leaf undersides",
			"Dark brown to black lesions on stems",
			"Rapid wilting and death of entire plant",
			"Brown, firm rot on fruits",
		},
		Treatments: []Treatment{
			{Name: "Metalaxyl 8% + Mancozeb 64% WP", Dosage: "2.5 grams per liter", Method: "Foliar spray", Frequency: "Every 7 days during outbreak", CostPerAcre: 320},
			{Name: "Cymoxanil 8% + Mancozeb 64% WP", Dosage: "3 grams per liter", Method: "Foliar spray", Frequency: "Every 7-10 days", CostPerAcre: 290},
		},
		OrganicTreatments: []string{
			"Copper hydroxide 77% WP (2g/L)",
			"Bordeaux mixture (1%)",
			"Remove and burn all infected parts immediately",
		},
		Prevention: []string{
			"Plant resistant varieties",
			"Avoid excess irrigation",
			"Ensure good air circulation",
			"Destroy volunteer tomato/potato plants",
			"Apply preventive fungicide before rainy season",
		},
		FavorableConditions: "Cool temperatures (15-22°C), high humidity (>90%), prolonged wet weather",
		ImageKeywords:       []string{"water soaked", "white mold", "rapid wilting", "dark lesions", "tomato"},
	},
	{
		Key:             "tomato_leaf_curl",
		DiseaseName:     "Tomato Leaf Curl Virus",
		HindiName:       "टमाटर पत्ती मोड़क विषाणु",
		ScientificName:  "ToLCV (Begomovirus)",
		Crop:            "Tomato",
		CropHindi:       "टमाटर",
		Category:        "Viral",
		TypicalSeverity: "severe",
		Description:     "Leaves curl upward and inward, becoming thick and leathery. Plants become stunted with reduced fruit production. Spread by whiteflies.",
		DescriptionHindi: "पत्तियां ऊपर और अंदर की ओर मुड़ जाती हैं, मोटी और चमड़े जैसी हो जाती हैं। पौधे बौने हो जाते हैं।",
		Symptoms: []string{
			"Upward curling and cupping of leaves",
			"Leaves become thick and leathery",
			"Yellowing of leaf margins",
			"Stunted plant growth",
			"Drastic reduction in fruit set",
		},
		Treatments: []Treatment{
			{Name: "Imidacloprid 17.8% SL (for whitefly control)", Dosage: "0.3 ml per liter of water", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 150},
			{Name: "Thiamethoxam 25% WG", Dosage: "0.3 grams per liter", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 180},
		},
		OrganicTreatments: []string{
			"Yellow sticky traps for whitefly monitoring",
			"Neem oil 5ml/L spray every 7 days",
			"Remove and destroy infected plants",
		},
		Prevention: []string{
			"Use ToLCV-resistant varieties (Arka Rakshak, etc.)",
			"Use insect-proof nursery nets",
			"Install yellow sticky traps",
			"Remove weeds that harbor whiteflies",
			"Seedling treatment with Imidacloprid",
		},
		FavorableConditions: "High whitefly population, warm dry weather, presence of alternate hosts",
		ImageKeywords:       []string{"leaf curl", "upward curling", "thick leaves", "stunted", "tomato"},
	},
	{
		Key:             "rice_blast",
		DiseaseName:     "Rice Blast",
		HindiName:       "धान का ब्लास्ट",
		ScientificName:  "Magnaporthe oryzae",
		Crop:            "Rice",
		CropHindi:       "धान",
		Category:        "Fungal",
		TypicalSeverity: "severe",
		Description:     "Diamond-shaped or eye-shaped spots with gray centers and brown borders on leaves. Can also affect neck, nodes, and panicles causing severe yield loss.",
		DescriptionHindi: "पत्तियों पर हीरे या आंख के आकार के धब्बे जिनका केंद्र भूरा और किनारे भूरे होते हैं। गर्दन और बालियों को भी प्रभावित कर सकता है।",
		Symptoms: []string{
			"Diamond/eye-shaped spots on leaves",
			"Gray center with brown border",
			"Lesions on leaf collar, neck, and nodes",
			"Neck rot causing white/empty panicles",
			"Severe: entire leaf drying",
		},
		Treatments: []Treatment{
			{Name: "Tricyclazole 75% WP", Dosage: "0.6 grams per liter", Method: "Foliar spray", Frequency: "At disease onset, repeat after 15 days", CostPerAcre: 280},
			{Name: "Isoprothiolane 40% EC", Dosage: "1.5 ml per liter", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 320},
			{Name: "Carbendazim 50% WP", Dosage: "1 gram per liter", Method: "Foliar spray", Frequency: "Every 10-15 days", CostPerAcre: 150},
		},
		OrganicTreatments: []string{
			"Pseudomonas fluorescens (10g/L water)",
			"Silicon application for plant strengthening",
			"Avoid excess nitrogen application",
		},
		Prevention: []string{
			"Use blast-resistant varieties",
			"Balanced fertilizer (avoid excess N)",
			"Maintain proper water management",
			"Seed treatment with Tricyclazole",
			"Avoid close spacing",
		},
		FavorableConditions: "High humidity (>90%), temperature 25-28°C, excess nitrogen, poor drainage",
		ImageKeywords:       []string{"diamond shaped", "eye shaped", "gray center", "leaf spots", "rice", "paddy"},
	},
	{
		Key:             "rice_brown_spot",
		DiseaseName:     "Brown Spot",
		HindiName:       "भूरा धब्बा रोग",
		ScientificName:  "Bipolaris oryzae",
		Crop:            "Rice",
		CropHindi:       "धान",
		Category:        "Fungal",
		TypicalSeverity: "moderate",
		Description:     "Oval to circular brown spots on leaves, often with a yellow halo. Associated with poor soil fertility and nutrient deficiency.",
		DescriptionHindi: "पत्तियों पर अंडाकार से गोलाकार भूरे धब्बे, अक्सर पीले घेरे के साथ। खराब मिट्टी की उर्वरता से जुड़ा है।",
		Symptoms: []string{
			"Oval brown spots on leaves",
			"Yellow halo around spots",
			"Spots on glumes causing discolored grain",
			"Seedling blight in nursery",
			"Associated with potassium deficiency",
		},
		Treatments: []Treatment{
			{Name: "Mancozeb 75% WP", Dosage: "2.5 grams per liter", Method: "Foliar spray", Frequency: "Every 10 days", CostPerAcre: 180},
			{Name: "Edifenphos 50% EC", Dosage: "1 ml per liter", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 200},
		},
		OrganicTreatments: []string{
			"Apply potash fertilizer (MOP 50kg/ha)",
			"Pseudomonas fluorescens seed treatment",
			"FYM/compost application",
		},
		Prevention: []string{
			"Balanced NPK fertilization",
			"Use certified disease-free seeds",
			"Seed treatment before sowing",
			"Adequate potassium application",
			"Proper water management",
		},
		FavorableConditions: "Poor soil, nutrient deficiency, high humidity, temperature 25-30°C",
		ImageKeywords:       []string{"brown spots", "oval spots", "yellow halo", "nutrient deficiency", "rice"},
	},
	{
		Key:             "wheat_leaf_rust",
		DiseaseName:     "Leaf Rust (Brown Rust)",
		HindiName:       "पत्ती का रतुआ (भूरा रतुआ)",
		ScientificName:  "Puccinia triticina",
		Crop:            "Wheat",
		CropHindi:       "गेहूं",
		Category:        "Fungal",
		TypicalSeverity: "severe",
		Description:     "Small, round to oval, orange-brown pustules scattered randomly on upper leaf surface. Pustules release powdery orange spores when touched.",
		DescriptionHindi: "पत्ती की ऊपरी सतह पर छोटे, गोल से अंडाकार, नारंगी-भूरे फुंसी बिखरे होते हैं। छूने पर नारंगी पाउडर जैसे बीजाणु निकलते हैं।",
		Symptoms: []string{
			"Orange-brown pustules on leaf upper surface",
			"Random distribution of pustules",
			"Powdery spores released when touched",
			"Severe infection causes leaf drying",
			"Reduced grain filling",
		},
		Treatments: []Treatment{
			{Name: "Propiconazole 25% EC", Dosage: "1 ml per liter of water", Method: "Foliar spray", Frequency: "At first appearance, repeat after 15 days", CostPerAcre: 250},
			{Name: "Tebuconazole 25.9% EC", Dosage: "1 ml per liter", Method: "Foliar spray", Frequency: "Once or twice at 15-day interval", CostPerAcre: 280},
		},
		OrganicTreatments: []string{
			"Grow resistant varieties (primary defense)",
			"Timely sowing (avoid late sowing)",
			"Balanced nitrogen application",
		},
		Prevention: []string{
			"Plant rust-resistant varieties",
			"Early sowing (November)",
			"Balanced nitrogen fertilization",
			"Avoid late irrigation",
			"Monitor fields from January onwards",
		},
		FavorableConditions: "Temperature 15-25°C, high humidity, dew, late-sown crop",
		ImageKeywords:       []string{"orange pustules", "brown rust", "rust spots", "powdery spores", "rust", "wheat"},
	},
	{
		Key:             "wheat_yellow_rust",
		DiseaseName:     "Yellow Rust (Stripe Rust)",
		HindiName:       "पीला रतुआ (धारी रतुआ)",
		ScientificName:  "Puccinia striiformis",
		Crop:            "Wheat",
		CropHindi:       "गेहूं",
		Category:        "Fungal",
		TypicalSeverity: "severe",
		Description:     "Yellow-orange pustules arranged in stripes along leaf veins. More damaging than brown rust, can cause complete crop failure.",
		DescriptionHindi: "पत्ती की नसों के साथ धारियों में व्यवस्थित पीले-नारंगी फुंसी। भूरे रतुआ से अधिक हानिकारक।",
		Symptoms: []string{
			"Yellow-orange pustules in stripes along veins",
			"Stripes on leaves, leaf sheaths, and awns",
			"Severe yellowing and drying of leaves",
			"Shriveled grains",
			"Complete crop failure in severe cases",
		},
		Treatments: []Treatment{
			{Name: "Propiconazole 25% EC", Dosage: "1 ml per liter", Method: "Foliar spray", Frequency: "Immediately at first sign", CostPerAcre: 250},
			{Name: "Triadimefon 25% WP", Dosage: "1 gram per liter", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 200},
		},
		OrganicTreatments: []string{
			"Use resistant varieties (best strategy)",
			"Early sowing to escape infection",
			"Balanced fertilization",
		},
		Prevention: []string{
			"Plant resistant varieties (critical)",
			"Early sowing",
			"Avoid excess nitrogen",
			"Report to agriculture department immediately",
			"Destroy volunteer wheat plants",
		},
		FavorableConditions: "Cool temperature (10-15°C), humidity, cloudy weather, north Indian plains in Jan-Feb",
		ImageKeywords:       []string{"yellow stripes", "stripe rust", "yellow pustules", "parallel lines", "wheat"},
	},
	{
		Key:             "cotton_bacterial_blight",
		DiseaseName:     "Bacterial Blight",
		HindiName:       "जीवाणु अंगमारी",
		ScientificName:  "Xanthomonas citri pv. malvacearum",
		Crop:            "Cotton",
		CropHindi:       "कपास",
		Category:        "Bacterial",
		TypicalSeverity: "moderate",
		Description:     "Angular water-soaked spots on leaves that turn brown-black. Lesions are vein-limited giving angular appearance. Black arm symptoms on stems.",
		DescriptionHindi: "पत्तियों पर कोणीय पानी में भीगे धब्बे जो भूरे-काले हो जाते हैं। तनों पर काली भुजा के लक्षण।",
		Symptoms: []string{
			"Angular water-soaked leaf spots",
			"Spots turn brown to black",
			"Vein-limited lesions",
			"Black arm on stems and branches",
			"Boll rot in severe cases",
		},
		Treatments: []Treatment{
			{Name: "Streptocycline + Copper Oxychloride", Dosage: "0.5g Streptocycline + 3g COC per liter", Method: "Foliar spray", Frequency: "Every 10-15 days", CostPerAcre: 200},
			{Name: "Copper Hydroxide 77% WP", Dosage: "2 grams per liter", Method: "Foliar spray", Frequency: "Every 10 days", CostPerAcre: 180},
		},
		OrganicTreatments: []string{
			"Seed treatment with Pseudomonas fluorescens",
			"Acid delinting of seeds",
			"Copper-based sprays",
		},
		Prevention: []string{
			"Use disease-free certified seeds",
			"Acid delinting of seeds",
			"Seed treatment with antibiotics",
			"Avoid excess irrigation during vegetative stage",
			"Remove and destroy infected plant debris",
		},
		FavorableConditions: "Warm (25-35°C), humid, rainy weather, sprinkler irrigation",
		ImageKeywords:       []string{"angular spots", "water soaked", "black arm", "vein limited", "cotton"},
	},
	{
		Key:             "potato_late_blight",
		DiseaseName:     "Late Blight",
		HindiName:       "पछेती झुलसा",
		ScientificName:  "Phytophthora infestans",
		Crop:            "Potato",
		CropHindi:       "आलू",
		Category:        "Oomycete",
		TypicalSeverity: "severe",
		Description:     "Water-soaked spots on leaf tips and edges that rapidly turn dark brown. White mold on undersides. Tubers develop firm brown rot.",
		DescriptionHindi: "पत्ती के किनारों पर पानी में भीगे धब्बे जो तेजी से गहरे भूरे हो जाते हैं। कंदों में सड़न होती है।",
		Symptoms: []string{
			"Water-soaked spots on leaf tips and margins",
			"Rapid browning and blackening",
			"White cottony growth on leaf undersides",
			"Entire plant collapse in 3-5 days",
			"Firm granular brown rot in tubers",
		},
		Treatments: []Treatment{
			{Name: "Metalaxyl 8% + Mancozeb 64% WP", Dosage: "2.5 grams per liter", Method: "Foliar spray", Frequency: "Every 7 days during outbreak", CostPerAcre: 350},
			{Name: "Cymoxanil 8% + Mancozeb 64% WP", Dosage: "3 grams per liter", Method: "Foliar spray", Frequency: "Every 7-10 days", CostPerAcre: 300},
			{Name: "Dimethomorph 50% WP", Dosage: "1 gram per liter", Method: "Foliar spray", Frequency: "Every 7 days", CostPerAcre: 400},
		},
		OrganicTreatments: []string{
			"Bordeaux mixture 1%",
			"Copper hydroxide spray",
			"Remove and burn all infected plants",
		},
		Prevention: []string{
			"Plant certified disease-free tubers",
			"Use resistant varieties (Kufri Jyoti, etc.)",
			"Proper hilling up of tubers",
			"Preventive spray before weather turns cold and humid",
			"Good drainage, avoid waterlogging",
		},
		FavorableConditions: "Cool nights (10-15°C), humid days, fog, continuous rain",
		ImageKeywords:       []string{"water soaked", "white mold", "rapid browning", "tuber rot", "potato"},
	},
	{
		Key:             "chili_anthracnose",
		DiseaseName:     "Anthracnose / Fruit Rot",
		HindiName:       "एंथ्रेक्नोज / फल सड़न",
		ScientificName:  "Colletotrichum capsici",
		Crop:            "Chili",
		CropHindi:       "मिर्च",
		Category:        "Fungal",
		TypicalSeverity: "severe",
		Description:     "Small circular sunken spots on ripe fruits that enlarge and develop dark concentric rings. Fruits shrivel and dry up (die-back on twigs).",
		DescriptionHindi: "पके फलों पर छोटे गोलाकार धंसे हुए धब्बे जो बड़े होकर गहरे संकेंद्रित वलय बनाते हैं। फल सूख जाते हैं।",
		Symptoms: []string{
			"Sunken circular spots on fruits",
			"Dark spots with concentric rings",
			"Fruits shrivel and mummify",
			"Die-back of twigs from tips",
			"Seeds in infected fruits turn black",
		},
		Treatments: []Treatment{
			{Name: "Carbendazim 50% WP", Dosage: "1 gram per liter", Method: "Foliar spray", Frequency: "Every 10-15 days", CostPerAcre: 150},
			{Name: "Mancozeb 75% WP + Carbendazim 50% WP", Dosage: "2g Mancozeb + 1g Carbendazim per liter", Method: "Foliar spray alternately", Frequency: "Every 10 days", CostPerAcre: 200},
		},
		OrganicTreatments: []string{
			"Trichoderma viride seed treatment (4g/kg)",
			"Neem oil spray 5ml/L",
			"Hot water seed treatment (52°C for 30 min)",
		},
		Prevention: []string{
			"Use disease-free seeds",
			"Seed treatment before sowing",
			"Practice crop rotation (3 years)",
			"Avoid excess irrigation during fruiting",
			"Harvest ripe fruits promptly",
		},
		FavorableConditions: "Warm (28-32°C), high humidity, rainy season, dense planting",
		ImageKeywords:       []string{"sunken spots", "fruit rot", "concentric rings", "shriveled fruit", "chili", "pepper"},
	},
	{
		Key:             "onion_purple_blotch",
		DiseaseName:     "Purple Blotch",
		HindiName:       "बैंगनी धब्बा रोग",
		ScientificName:  "Alternaria porri",
		Crop:            "Onion",
		CropHindi:       "प्याज",
		Category:        "Fungal",
		TypicalSeverity: "moderate",
		Description:     "Purple-brown lesions with concentric zones on leaves. Lesions start as small water-soaked spots and enlarge. Heavily affected leaves dry up.",
		DescriptionHindi: "पत्तियों पर बैंगनी-भूरे धब्बे जिनमें संकेंद्रित क्षेत्र होते हैं। प्रभावित पत्तियां सूख जाती हैं।",
		Symptoms: []string{
			"Purple-brown oval lesions on leaves",
			"Concentric zonation in lesions",
			"Initial water-soaked spots",
			"Drying and collapse of leaves",
			"Neck infection during storage",
		},
		Treatments: []Treatment{
			{Name: "Mancozeb 75% WP", Dosage: "2.5 grams per liter", Method: "Foliar spray with sticker", Frequency: "Every 10 days", CostPerAcre: 180},
			{Name: "Tebuconazole 25.9% EC", Dosage: "1 ml per liter", Method: "Foliar spray", Frequency: "Every 15 days", CostPerAcre: 280},
		},
		OrganicTreatments: []string{
			"Copper oxychloride 50% WP (3g/L)",
			"Neem oil spray",
			"Trichoderma soil application",
		},
		Prevention: []string{
			"Use healthy planting material",
			"Proper plant spacing",
			"Avoid overhead irrigation",
			"Remove crop debris after harvest",
			"Store onions in dry, ventilated place",
		},
		FavorableConditions: "High humidity (>80%), warm temperature (25-30°C), rainfall",
		ImageKeywords:       []string{"purple lesions", "concentric zones", "brown spots", "leaf drying", "onion"},
	},
	{
		Key:             KeyHealthy,
		DiseaseName:     "Healthy Plant",
		HindiName:       "स्वस्थ पौधा",
		ScientificName:  "N/A",
		Crop:            "General",
		CropHindi:       "सामान्य",
		Category:        "Healthy",
		TypicalSeverity: "none",
		Description:     "No disease detected. The plant appears healthy with normal green coloration and no visible symptoms of infection.",
		DescriptionHindi: "कोई बीमारी नहीं पाई गई। पौधा सामान्य हरे रंग और बिना किसी संक्रमण के लक्षणों के साथ स्वस्थ दिखाई देता है।",
		Symptoms:        []string{"No symptoms - plant appears healthy"},
		Treatments: []Treatment{
			{Name: "Regular monitoring", Dosage: "N/A", Method: "Visual inspection", Frequency: "Weekly", CostPerAcre: 0},
		},
		OrganicTreatments: []string{
			"Continue good agricultural practices",
			"Regular crop monitoring",
			"Balanced nutrition",
		},
		Prevention: []string{
			"Continue regular field monitoring",
			"Maintain balanced fertilizer schedule",
			"Proper irrigation management",
			"Timely weed management",
			"Monitor for early signs of pest/disease",
		},
		FavorableConditions: "N/A",
		ImageKeywords:       []string{"healthy", "green", "normal", "no spots", "clean"},
	},
}
