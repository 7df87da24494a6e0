package seeder

import "winestudy/internal/domain/catalog"

var Grapes = []catalog.Grape{
	{
		GrapeID: "cabernet_sauvignon", Name: "Cabernet Sauvignon", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "A uva tinta mais plantada do mundo, conhecida por sua estrutura tânica e potencial de envelhecimento.",
		DescriptionEN: "The most planted red grape in the world, known for its tannic structure and aging potential.",
		AromaticNotes: []string{"Cassis", "Cedar", "Tobacco", "Green pepper"},
		FlavorNotes:   []string{"Black currant", "Mint", "Dark chocolate"},
		Structure:     map[string]any{"acidity": "Média-alta", "tannin": "Alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "15-30+ anos", BestRegions: []string{"Bordeaux", "Napa Valley", "Coonawarra"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "merlot", Name: "Merlot", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "Uva versátil que produz vinhos macios e frutados, frequentemente usada em blends.",
		DescriptionEN: "Versatile grape producing soft, fruity wines, often used in blends.",
		AromaticNotes: []string{"Plum", "Cherry", "Chocolate", "Herbs"},
		FlavorNotes:   []string{"Red fruits", "Vanilla", "Spice"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio", "body": "Médio a encorpado", "alcohol": "12-14%"},
		AgingPotential: "5-15 anos", BestRegions: []string{"Bordeaux", "Tuscany", "Chile"}, ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "pinot_noir", Name: "Pinot Noir", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "A uva mais difícil de cultivar, produz vinhos elegantes e complexos na Borgonha.",
		DescriptionEN: "The most difficult grape to grow, producing elegant and complex wines in Burgundy.",
		AromaticNotes: []string{"Cherry", "Raspberry", "Rose", "Earth"},
		FlavorNotes:   []string{"Red berries", "Mushroom", "Forest floor"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "Baixo a médio", "body": "Leve a médio", "alcohol": "12-14%"},
		AgingPotential: "5-20+ anos", BestRegions: []string{"Burgundy", "Oregon", "New Zealand"}, ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "sangiovese", Name: "Sangiovese", GrapeType: catalog.GrapeTypeRed, OriginCountry: "italy",
		DescriptionPT: "A alma da Toscana, produz Chianti e Brunello di Montalcino.",
		DescriptionEN: "The soul of Tuscany, producing Chianti and Brunello di Montalcino.",
		AromaticNotes: []string{"Cherry", "Tomato leaf", "Herbs", "Leather"},
		FlavorNotes:   []string{"Sour cherry", "Tea", "Dried herbs"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "Médio-alto", "body": "Médio", "alcohol": "12-14%"},
		AgingPotential: "5-20+ anos", BestRegions: []string{"Tuscany", "Romagna"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "tempranillo", Name: "Tempranillo", GrapeType: catalog.GrapeTypeRed, OriginCountry: "spain",
		DescriptionPT: "Principal uva da Rioja, versátil e expressiva com notas de couro e tabaco.",
		DescriptionEN: "Main grape of Rioja, versatile and expressive with leather and tobacco notes.",
		AromaticNotes: []string{"Cherry", "Leather", "Tobacco", "Vanilla"},
		FlavorNotes:   []string{"Plum", "Fig", "Cedar"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio", "body": "Médio a encorpado", "alcohol": "13-14%"},
		AgingPotential: "5-25+ anos", BestRegions: []string{"Rioja", "Ribera del Duero", "Toro"}, ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "malbec", Name: "Malbec", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "Originária de Cahors, encontrou sua expressão máxima na Argentina.",
		DescriptionEN: "Originally from Cahors, found its maximum expression in Argentina.",
		AromaticNotes: []string{"Blackberry", "Plum", "Violet", "Cocoa"},
		FlavorNotes:   []string{"Dark fruits", "Chocolate", "Spice"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio-alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "5-15 anos", BestRegions: []string{"Mendoza", "Cahors"}, ClimatePreference: "Quente com altitude",
	},
	{
		GrapeID: "nebbiolo", Name: "Nebbiolo", GrapeType: catalog.GrapeTypeRed, OriginCountry: "italy",
		DescriptionPT: "A nobre uva do Piemonte, produz Barolo e Barbaresco.",
		DescriptionEN: "The noble grape of Piedmont, producing Barolo and Barbaresco.",
		AromaticNotes: []string{"Rose", "Tar", "Cherry", "Truffle"},
		FlavorNotes:   []string{"Red cherry", "Licorice", "Dried herbs"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "Muito alto", "body": "Médio a encorpado", "alcohol": "13-15%"},
		AgingPotential: "15-40+ anos", BestRegions: []string{"Piedmont"}, ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "syrah", Name: "Syrah / Shiraz", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "Produz vinhos potentes e especiados no Rhône e na Austrália.",
		DescriptionEN: "Produces powerful, spicy wines in the Rhône and Australia.",
		AromaticNotes: []string{"Blackberry", "Black pepper", "Smoke", "Bacon"},
		FlavorNotes:   []string{"Dark fruits", "Olive", "Leather"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio-alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "5-20+ anos", BestRegions: []string{"Rhône", "Barossa", "Stellenbosch"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "chardonnay", Name: "Chardonnay", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT: "A uva branca mais versátil, do Chablis mineral ao estilo amanteigado californiano.",
		DescriptionEN: "The most versatile white grape, from mineral Chablis to buttery California style.",
		AromaticNotes: []string{"Apple", "Citrus", "Butter", "Oak"},
		FlavorNotes:   []string{"Tropical fruits", "Vanilla", "Toast"},
		Structure:     map[string]any{"acidity": "Média a alta", "tannin": "N/A", "body": "Médio a encorpado", "alcohol": "12-14%"},
		AgingPotential: "2-10+ anos", BestRegions: []string{"Burgundy", "Champagne", "California"}, ClimatePreference: "Frio a quente",
	},
	{
		GrapeID: "sauvignon_blanc", Name: "Sauvignon Blanc", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT: "Aromática e refrescante, com notas herbáceas e cítricas marcantes.",
		DescriptionEN: "Aromatic and refreshing, with striking herbaceous and citrus notes.",
		AromaticNotes: []string{"Grapefruit", "Grass", "Gooseberry", "Passion fruit"},
		FlavorNotes:   []string{"Citrus", "Green apple", "Mineral"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "11-13%"},
		AgingPotential: "1-5 anos", BestRegions: []string{"Loire", "Marlborough", "Bordeaux"}, ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "riesling", Name: "Riesling", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "germany",
		DescriptionPT: "Rainha das uvas brancas alemãs, do seco ao doce, sempre com acidez vibrante.",
		DescriptionEN: "Queen of German white grapes, from dry to sweet, always with vibrant acidity.",
		AromaticNotes: []string{"Lime", "Peach", "Petrol", "Honey"},
		FlavorNotes:   []string{"Apple", "Apricot", "Mineral", "Slate"},
		Structure:     map[string]any{"acidity": "Muito alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "8-13%"},
		AgingPotential: "5-30+ anos", BestRegions: []string{"Mosel", "Alsace", "Clare Valley"}, ClimatePreference: "Frio",
	},
	{
		GrapeID: "touriga_nacional", Name: "Touriga Nacional", GrapeType: catalog.GrapeTypeRed, OriginCountry: "portugal",
		DescriptionPT: "A mais nobre uva portuguesa, base dos melhores vinhos do Porto e Douro.",
		DescriptionEN: "The noblest Portuguese grape, base of the best Port and Douro wines.",
		AromaticNotes: []string{"Violet", "Blackberry", "Rock rose", "Mint"},
		FlavorNotes:   []string{"Dark fruits", "Chocolate", "Herbs"},
		Structure:     map[string]any{"acidity": "Média-alta", "tannin": "Alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "10-30+ anos", BestRegions: []string{"Douro", "Dão"}, ClimatePreference: "Quente",
	},
}
