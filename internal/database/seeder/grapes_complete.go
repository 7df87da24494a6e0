package seeder

import "winestudy/internal/domain/catalog"

// CompleteGrapes extends the core catalog with further varieties; entries
// whose grape_id already exists are skipped at insert time.
var CompleteGrapes = []catalog.Grape{
	{
		GrapeID: "grenache", Name: "Grenache / Garnacha", GrapeType: catalog.GrapeTypeRed, OriginCountry: "spain",
		DescriptionPT: "Uva generosa do Mediterrâneo, base dos blends do sul do Rhône e do Priorat.",
		DescriptionEN: "Generous Mediterranean grape, base of southern Rhône and Priorat blends.",
		AromaticNotes: []string{"Strawberry", "Raspberry", "White pepper", "Herbs"},
		FlavorNotes:   []string{"Red fruits", "Spice", "Garrigue"},
		Structure:     map[string]any{"acidity": "Baixa a média", "tannin": "Baixo a médio", "body": "Médio a encorpado", "alcohol": "14-16%"},
		AgingPotential: "5-15 anos", BestRegions: []string{"Rhône", "Priorat", "Barossa"}, ClimatePreference: "Quente e seco",
	},
	{
		GrapeID: "gamay", Name: "Gamay", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "A uva do Beaujolais, produz tintos leves, frutados e de acidez vibrante.",
		DescriptionEN: "The Beaujolais grape, producing light, fruity reds with vibrant acidity.",
		AromaticNotes: []string{"Cherry", "Banana", "Violet", "Bubblegum"},
		FlavorNotes:   []string{"Red berries", "Cranberry", "Pepper"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "Baixo", "body": "Leve", "alcohol": "12-13%"},
		AgingPotential: "1-10 anos", BestRegions: []string{"Beaujolais", "Loire"}, ClimatePreference: "Moderado",
	},
	{
		GrapeID: "carmenere", Name: "Carménère", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "Casta bordalesa quase extinta que renasceu no Chile, onde foi confundida com Merlot por décadas.",
		DescriptionEN: "Nearly extinct Bordeaux variety reborn in Chile, where it was mistaken for Merlot for decades.",
		AromaticNotes: []string{"Green pepper", "Blackberry", "Chocolate", "Tomato leaf"},
		FlavorNotes:   []string{"Dark fruits", "Herbs", "Spice"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio", "body": "Médio a encorpado", "alcohol": "13-14%"},
		AgingPotential: "3-10 anos", BestRegions: []string{"Colchagua", "Maipo"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "pinotage", Name: "Pinotage", GrapeType: catalog.GrapeTypeRed, OriginCountry: "south_africa",
		DescriptionPT: "Cruzamento sul-africano de Pinot Noir e Cinsault, com estilo rústico e defumado.",
		DescriptionEN: "South African cross of Pinot Noir and Cinsault, with a rustic, smoky style.",
		AromaticNotes: []string{"Plum", "Smoke", "Tar", "Banana"},
		FlavorNotes:   []string{"Dark fruits", "Coffee", "Sweet spice"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio-alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "5-15 anos", BestRegions: []string{"Stellenbosch", "Swartland"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "zinfandel", Name: "Zinfandel / Primitivo", GrapeType: catalog.GrapeTypeRed, OriginCountry: "croatia",
		DescriptionPT: "Mesma uva nos EUA (Zinfandel) e na Puglia (Primitivo): frutada, madura e alcoólica.",
		DescriptionEN: "The same grape in the USA (Zinfandel) and Puglia (Primitivo): fruity, ripe and alcoholic.",
		AromaticNotes: []string{"Blackberry jam", "Raisin", "Black pepper", "Licorice"},
		FlavorNotes:   []string{"Ripe dark fruits", "Sweet spice", "Tobacco"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "Médio", "body": "Encorpado", "alcohol": "14-16%"},
		AgingPotential: "3-10 anos", BestRegions: []string{"Sonoma", "Puglia"}, ClimatePreference: "Quente",
	},
	{
		GrapeID: "barbera", Name: "Barbera", GrapeType: catalog.GrapeTypeRed, OriginCountry: "italy",
		DescriptionPT: "A uva do dia a dia do Piemonte: acidez alta, taninos baixos e fruta vermelha generosa.",
		DescriptionEN: "Piedmont's everyday grape: high acidity, low tannins and generous red fruit.",
		AromaticNotes: []string{"Cherry", "Plum", "Dried herbs", "Violet"},
		FlavorNotes:   []string{"Sour cherry", "Red plum", "Spice"},
		Structure:     map[string]any{"acidity": "Muito alta", "tannin": "Baixo", "body": "Médio", "alcohol": "13-14%"},
		AgingPotential: "2-8 anos", BestRegions: []string{"Piedmont"}, ClimatePreference: "Moderado",
	},
	{
		GrapeID: "tannat", Name: "Tannat", GrapeType: catalog.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT: "De Madiran ao Uruguai, onde se tornou a casta nacional: taninos poderosos e fruta escura.",
		DescriptionEN: "From Madiran to Uruguay, where it became the national grape: powerful tannins and dark fruit.",
		AromaticNotes: []string{"Blackberry", "Plum", "Smoke", "Cocoa"},
		FlavorNotes:   []string{"Dark fruits", "Leather", "Spice"},
		Structure:     map[string]any{"acidity": "Média-alta", "tannin": "Muito alto", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "5-20 anos", BestRegions: []string{"Canelones", "Madiran"}, ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "chenin_blanc", Name: "Chenin Blanc", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT: "Camaleoa do Loire e da África do Sul: do espumante ao doce botritizado.",
		DescriptionEN: "Chameleon of the Loire and South Africa: from sparkling to botrytized sweet.",
		AromaticNotes: []string{"Quince", "Apple", "Honey", "Chamomile"},
		FlavorNotes:   []string{"Stone fruit", "Honey", "Wet wool"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "N/A", "body": "Leve a encorpado", "alcohol": "11-14%"},
		AgingPotential: "5-30+ anos", BestRegions: []string{"Vouvray", "Stellenbosch", "Swartland"}, ClimatePreference: "Moderado",
	},
	{
		GrapeID: "gewurztraminer", Name: "Gewürztraminer", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT: "Intensamente aromática, com lichia e rosas. Expressão máxima na Alsácia.",
		DescriptionEN: "Intensely aromatic, with lychee and roses. Finest expression in Alsace.",
		AromaticNotes: []string{"Lychee", "Rose", "Ginger", "Turkish delight"},
		FlavorNotes:   []string{"Tropical fruits", "Sweet spice", "Honey"},
		Structure:     map[string]any{"acidity": "Baixa", "tannin": "N/A", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "2-10 anos", BestRegions: []string{"Alsace", "Alto Adige"}, ClimatePreference: "Frio",
	},
	{
		GrapeID: "albarino", Name: "Albariño / Alvarinho", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "spain",
		DescriptionPT: "Estrela atlântica das Rías Baixas e do Vinho Verde, salina e cítrica.",
		DescriptionEN: "Atlantic star of Rías Baixas and Vinho Verde, saline and citrusy.",
		AromaticNotes: []string{"Lemon", "Peach", "Sea spray", "Blossom"},
		FlavorNotes:   []string{"Citrus", "Stone fruit", "Saline mineral"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "12-13%"},
		AgingPotential: "1-5 anos", BestRegions: []string{"Rías Baixas", "Vinho Verde"}, ClimatePreference: "Frio e úmido",
	},
	{
		GrapeID: "gruner_veltliner", Name: "Grüner Veltliner", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "austria",
		DescriptionPT: "A casta nacional da Áustria, com pimenta branca e acidez cortante.",
		DescriptionEN: "Austria's national grape, with white pepper and cutting acidity.",
		AromaticNotes: []string{"White pepper", "Lime", "Lentil", "Green apple"},
		FlavorNotes:   []string{"Citrus", "Radish", "Mineral"},
		Structure:     map[string]any{"acidity": "Alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "12-13%"},
		AgingPotential: "3-15 anos", BestRegions: []string{"Wachau", "Kamptal"}, ClimatePreference: "Frio",
	},
	{
		GrapeID: "torrontes", Name: "Torrontés", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "argentina",
		DescriptionPT: "Branca aromática argentina, no auge nos vinhedos de altitude de Salta.",
		DescriptionEN: "Argentina's aromatic white, at its peak in Salta's high-altitude vineyards.",
		AromaticNotes: []string{"Rose", "Geranium", "Peach", "Muscat"},
		FlavorNotes:   []string{"Citrus", "Stone fruit", "Floral"},
		Structure:     map[string]any{"acidity": "Média", "tannin": "N/A", "body": "Leve a médio", "alcohol": "13-14%"},
		AgingPotential: "1-3 anos", BestRegions: []string{"Salta", "La Rioja (Argentina)"}, ClimatePreference: "Desértico de altitude",
	},
	{
		GrapeID: "viognier", Name: "Viognier", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT: "Branca opulenta de Condrieu, com damasco e flores brancas.",
		DescriptionEN: "Opulent white of Condrieu, with apricot and white flowers.",
		AromaticNotes: []string{"Apricot", "Honeysuckle", "Peach", "Ginger"},
		FlavorNotes:   []string{"Stone fruit", "Floral", "Cream"},
		Structure:     map[string]any{"acidity": "Baixa a média", "tannin": "N/A", "body": "Encorpado", "alcohol": "13-15%"},
		AgingPotential: "1-5 anos", BestRegions: []string{"Rhône", "Languedoc"}, ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "vermentino", Name: "Vermentino", GrapeType: catalog.GrapeTypeWhite, OriginCountry: "italy",
		DescriptionPT: "Branca mediterrânea da Sardenha e Toscana litorânea, salina e herbácea.",
		DescriptionEN: "Mediterranean white of Sardinia and coastal Tuscany, saline and herbaceous.",
		AromaticNotes: []string{"Citrus", "Green apple", "Fennel", "Sea breeze"},
		FlavorNotes:   []string{"Lime", "Almond", "Saline mineral"},
		Structure:     map[string]any{"acidity": "Média-alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "12-13%"},
		AgingPotential: "1-4 anos", BestRegions: []string{"Sardinia", "Liguria"}, ClimatePreference: "Mediterrâneo",
	},
}
