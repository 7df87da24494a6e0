package seeder

import "winestudy/internal/domain/catalog"

// Regions is the core region set. Terroir and climate use the legacy
// single-language keys; the expanded dataset in regions_complete.go carries
// the bilingual variants.
var Regions = []catalog.Region{
	{
		RegionID: "bordeaux", CountryID: "france", Name: "Bordeaux",
		DescriptionPT: "A região mais prestigiada do mundo para vinhos tintos, conhecida por seus blends de Cabernet Sauvignon e Merlot.",
		DescriptionEN: "The most prestigious region in the world for red wines, known for its Cabernet Sauvignon and Merlot blends.",
		Terroir:       map[string]any{"soil": "Cascalho, argila, calcário", "altitude": "0-100m", "maritime_influence": true},
		Climate:       map[string]any{"type": "Oceânico", "temperature": "Moderado", "rainfall": "Alta"},
		Appellations:  []string{"Médoc", "Saint-Émilion", "Pomerol", "Graves", "Sauternes"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Merlot", "Cabernet Franc", "Sémillon", "Sauvignon Blanc"},
		WineStyles:    []string{"Tinto seco", "Branco seco", "Doce"},
	},
	{
		RegionID: "burgundy", CountryID: "france", Name: "Bourgogne",
		DescriptionPT: "Terra da Pinot Noir e Chardonnay, com sistema único de classificação por terroir.",
		DescriptionEN: "Land of Pinot Noir and Chardonnay, with unique terroir classification system.",
		Terroir:       map[string]any{"soil": "Calcário, argila", "altitude": "200-400m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental", "temperature": "Frio a moderado", "rainfall": "Moderada"},
		Appellations:  []string{"Côte de Nuits", "Côte de Beaune", "Chablis", "Mâconnais"},
		MainGrapes:    []string{"Pinot Noir", "Chardonnay", "Aligoté"},
		WineStyles:    []string{"Tinto seco", "Branco seco"},
	},
	{
		RegionID: "champagne", CountryID: "france", Name: "Champagne",
		DescriptionPT: "Única região autorizada a produzir o verdadeiro Champagne pelo método tradicional.",
		DescriptionEN: "Only region authorized to produce true Champagne by the traditional method.",
		Terroir:       map[string]any{"soil": "Giz, calcário", "altitude": "90-300m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental frio", "temperature": "Frio", "rainfall": "Moderada"},
		Appellations:  []string{"Montagne de Reims", "Vallée de la Marne", "Côte des Blancs"},
		MainGrapes:    []string{"Chardonnay", "Pinot Noir", "Pinot Meunier"},
		WineStyles:    []string{"Espumante"},
	},
	{
		RegionID: "tuscany", CountryID: "italy", Name: "Toscana",
		DescriptionPT: "Coração da vinicultura italiana, lar do Sangiovese e dos Super Toscanos.",
		DescriptionEN: "Heart of Italian winemaking, home of Sangiovese and Super Tuscans.",
		Terroir:       map[string]any{"soil": "Galestro, alberese, argila", "altitude": "200-500m", "maritime_influence": true},
		Climate:       map[string]any{"type": "Mediterrâneo", "temperature": "Quente", "rainfall": "Baixa a moderada"},
		Appellations:  []string{"Chianti", "Brunello di Montalcino", "Bolgheri", "Vino Nobile di Montepulciano"},
		MainGrapes:    []string{"Sangiovese", "Cabernet Sauvignon", "Merlot", "Vernaccia"},
		WineStyles:    []string{"Tinto seco", "Branco seco"},
	},
	{
		RegionID: "piedmont", CountryID: "italy", Name: "Piemonte",
		DescriptionPT: "Região dos grandes Barolo e Barbaresco, feitos com a nobre Nebbiolo.",
		DescriptionEN: "Region of great Barolo and Barbaresco, made with noble Nebbiolo.",
		Terroir:       map[string]any{"soil": "Marga calcária, argila", "altitude": "200-450m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental", "temperature": "Frio a moderado", "rainfall": "Moderada"},
		Appellations:  []string{"Barolo", "Barbaresco", "Asti", "Gavi"},
		MainGrapes:    []string{"Nebbiolo", "Barbera", "Dolcetto", "Moscato", "Cortese"},
		WineStyles:    []string{"Tinto seco", "Espumante doce", "Branco seco"},
	},
	{
		RegionID: "rioja", CountryID: "spain", Name: "Rioja",
		DescriptionPT: "A região mais famosa da Espanha, conhecida por Tempranillo envelhecido em carvalho americano.",
		DescriptionEN: "Spain's most famous region, known for Tempranillo aged in American oak.",
		Terroir:       map[string]any{"soil": "Argila ferruginosa, calcário, aluvial", "altitude": "300-700m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental com influência atlântica", "temperature": "Moderado", "rainfall": "Baixa a moderada"},
		Appellations:  []string{"Rioja Alta", "Rioja Alavesa", "Rioja Oriental"},
		MainGrapes:    []string{"Tempranillo", "Garnacha", "Graciano", "Viura"},
		WineStyles:    []string{"Tinto seco", "Branco seco", "Rosé"},
	},
	{
		RegionID: "douro", CountryID: "portugal", Name: "Douro",
		DescriptionPT: "Região demarcada mais antiga do mundo, berço do vinho do Porto.",
		DescriptionEN: "Oldest demarcated wine region in the world, birthplace of Port wine.",
		Terroir:       map[string]any{"soil": "Xisto", "altitude": "100-900m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental mediterrâneo", "temperature": "Quente", "rainfall": "Baixa"},
		Appellations:  []string{"Porto", "Douro DOC"},
		MainGrapes:    []string{"Touriga Nacional", "Touriga Franca", "Tinta Roriz", "Tinta Barroca"},
		WineStyles:    []string{"Tinto seco", "Fortificado"},
	},
	{
		RegionID: "napa_valley", CountryID: "usa", Name: "Napa Valley",
		DescriptionPT: "A mais prestigiada região dos EUA, conhecida por Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "The most prestigious US region, known for world-class Cabernet Sauvignon.",
		Terroir:       map[string]any{"soil": "Vulcânico, aluvial", "altitude": "0-600m", "maritime_influence": true},
		Climate:       map[string]any{"type": "Mediterrâneo", "temperature": "Quente", "rainfall": "Baixa"},
		Appellations:  []string{"Oakville", "Rutherford", "Stags Leap", "Howell Mountain"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Merlot", "Chardonnay", "Sauvignon Blanc"},
		WineStyles:    []string{"Tinto seco", "Branco seco"},
	},
	{
		RegionID: "mendoza", CountryID: "argentina", Name: "Mendoza",
		DescriptionPT: "Capital mundial do Malbec, com vinhedos em altitudes extremas.",
		DescriptionEN: "World capital of Malbec, with vineyards at extreme altitudes.",
		Terroir:       map[string]any{"soil": "Aluvial, arenoso", "altitude": "600-1500m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Continental desértico", "temperature": "Quente com amplitude térmica", "rainfall": "Muito baixa"},
		Appellations:  []string{"Luján de Cuyo", "Valle de Uco", "Maipú"},
		MainGrapes:    []string{"Malbec", "Cabernet Sauvignon", "Bonarda", "Torrontés"},
		WineStyles:    []string{"Tinto seco", "Branco aromático"},
	},
	{
		RegionID: "barossa", CountryID: "australia", Name: "Barossa Valley",
		DescriptionPT: "Lar de algumas das vinhas mais antigas do mundo, famosa pelo Shiraz potente.",
		DescriptionEN: "Home to some of the world's oldest vines, famous for powerful Shiraz.",
		Terroir:       map[string]any{"soil": "Argila vermelha, areia", "altitude": "200-400m", "maritime_influence": false},
		Climate:       map[string]any{"type": "Mediterrâneo continental", "temperature": "Quente", "rainfall": "Baixa"},
		Appellations:  []string{"Barossa Valley", "Eden Valley"},
		MainGrapes:    []string{"Shiraz", "Grenache", "Mourvèdre", "Riesling"},
		WineStyles:    []string{"Tinto seco", "Branco seco", "Fortificado"},
	},
}
