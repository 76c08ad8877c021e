package knowledge

// DefaultEntries is the built-in knowledge base seed. Entries arrive
// pre-approved; the curation workflow adds more over time from the
// unanswered-query log.
var DefaultEntries = []Entry{
	{
		Pattern:    "ashwagandha|ashwaganda",
		Answer:     "Ashwagandha is a classical Ayurvedic adaptogen used to support stress resilience, calm and restful sleep. It is one of our most popular supplements.",
		Intent:     "product_info",
		Confidence: 0.95,
		Keywords:   []string{"ashwagandha"},
		Approved:   true,
	},
	{
		Pattern:    "triphala",
		Answer:     "Triphala is a traditional blend of three fruits (Amalaki, Bibhitaki and Haritaki) that supports healthy digestion and gentle detoxification.",
		Intent:     "product_info",
		Confidence: 0.95,
		Keywords:   []string{"triphala"},
		Approved:   true,
	},
	{
		Pattern:    "turmeric|curcumin|haldi",
		Answer:     "Turmeric contains curcumin, prized in Ayurveda for joint comfort and immune support. We stock tablets, powders and golden-milk blends.",
		Intent:     "product_info",
		Confidence: 0.9,
		Keywords:   []string{"turmeric"},
		Approved:   true,
	},
	{
		Pattern:    "stress relief|reduce stress|feeling stressed",
		Answer:     "For stress relief, Ayurveda recommends adaptogens such as Ashwagandha and Brahmi, alongside regular sleep and breathing practice. Here are some products that can help:",
		Intent:     "product_search",
		Confidence: 0.85,
		Keywords:   []string{"stress"},
		Approved:   true,
	},
	{
		Pattern:    "boost immunity|immunity booster|immune support",
		Answer:     "Popular immunity supporters include Chyawanprash, Giloy, Tulsi and Turmeric. Here are some options from our catalog:",
		Intent:     "product_search",
		Confidence: 0.85,
		Keywords:   []string{"immunity"},
		Approved:   true,
	},
	{
		Pattern:    "what is ayurveda|ayurvedic medicine",
		Answer:     "Ayurveda is India's traditional system of medicine, focused on balancing body and mind through diet, herbs and daily routine. All our products follow classical Ayurvedic formulations.",
		Intent:     "general",
		Confidence: 0.9,
		Approved:   true,
	},
	{
		Pattern:    "side effects|is it safe|any precautions",
		Answer:     "Our products are made from natural ingredients and are generally well tolerated. If you are pregnant, nursing, or on medication, please consult your physician before use.",
		Intent:     "general",
		Confidence: 0.8,
		Approved:   true,
	},
}
