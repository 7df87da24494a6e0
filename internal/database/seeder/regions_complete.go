package seeder

import "winestudy/internal/domain/catalog"

// CompleteRegions extends the core region set with further appellation areas.
// Terroir and climate here carry the bilingual *_pt/*_en keys; only regions
// whose country is present in the core country set are included.
var CompleteRegions = []catalog.Region{
	{
		RegionID: "rhone", CountryID: "france", Name: "Rhône",
		DescriptionPT: "Dividida em Norte (Syrah elegante) e Sul (blends com Grenache). Inclui Côte-Rôtie, Hermitage e Châteauneuf-du-Pape.",
		DescriptionEN: "Divided into North (elegant Syrah) and South (Grenache blends). Includes Côte-Rôtie, Hermitage and Châteauneuf-du-Pape.",
		Terroir:       map[string]any{"soil_pt": "Granito (norte), seixos rolados (sul)", "soil_en": "Granite (north), galets roulés/rounded stones (south)", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental (norte), Mediterrâneo (sul)", "type_en": "Continental (north), Mediterranean (south)", "temperature_pt": "Moderado a quente", "temperature_en": "Moderate to warm", "rainfall_pt": "600-800mm/ano", "rainfall_en": "600-800mm/year"},
		MainGrapes:    []string{"Syrah", "Grenache", "Mourvèdre", "Viognier", "Marsanne", "Roussanne"},
		WineStyles:    []string{"Tintos potentes", "Brancos aromáticos"},
	},
	{
		RegionID: "loire", CountryID: "france", Name: "Loire Valley",
		DescriptionPT: "O jardim da França, com grande diversidade de estilos. Famosa por Sauvignon Blanc (Sancerre), Chenin Blanc (Vouvray) e Cabernet Franc (Chinon).",
		DescriptionEN: "The garden of France, with great diversity of styles. Famous for Sauvignon Blanc (Sancerre), Chenin Blanc (Vouvray) and Cabernet Franc (Chinon).",
		Terroir:       map[string]any{"soil_pt": "Calcário, sílex, xisto, tufo", "soil_en": "Limestone, flint, schist, tuffeau", "altitude_pt": "50-300m", "altitude_en": "50-300m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Oceânico a continental", "type_en": "Oceanic to continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "600-700mm/ano", "rainfall_en": "600-700mm/year"},
		MainGrapes:    []string{"Sauvignon Blanc", "Chenin Blanc", "Cabernet Franc", "Muscadet"},
		WineStyles:    []string{"Brancos frescos", "Tintos leves", "Espumantes", "Doces"},
	},
	{
		RegionID: "alsace", CountryID: "france", Name: "Alsace",
		DescriptionPT: "Região de influência germânica, especializada em brancos aromáticos. Vinhos varietais em garrafas alongadas características.",
		DescriptionEN: "German-influenced region, specializing in aromatic whites. Varietal wines in characteristic elongated bottles.",
		Terroir:       map[string]any{"soil_pt": "Granito, calcário, argila, arenito", "soil_en": "Granite, limestone, clay, sandstone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "500mm/ano (uma das mais secas)", "rainfall_en": "500mm/year (one of the driest)"},
		MainGrapes:    []string{"Riesling", "Gewürztraminer", "Pinot Gris", "Muscat"},
		WineStyles:    []string{"Brancos aromáticos secos", "Vendanges Tardives (colheita tardia)"},
	},
	{
		RegionID: "provence", CountryID: "france", Name: "Provence",
		DescriptionPT: "Capital mundial do vinho rosé. Vinhos pálidos, secos e refrescantes. Paisagens icônicas do sul da França.",
		DescriptionEN: "World capital of rosé wine. Pale, dry and refreshing wines. Iconic southern French landscapes.",
		Terroir:       map[string]any{"soil_pt": "Calcário, xisto, argila, arenito", "soil_en": "Limestone, schist, clay, sandstone", "altitude_pt": "0-400m", "altitude_en": "0-400m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e ensolarado", "temperature_en": "Warm and sunny", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"},
		MainGrapes:    []string{"Grenache", "Cinsault", "Syrah", "Mourvèdre"},
		WineStyles:    []string{"Rosés pálidos e secos"},
	},
	{
		RegionID: "beaujolais", CountryID: "france", Name: "Beaujolais",
		DescriptionPT: "Região do Gamay, produzindo vinhos frutados e leves. Dos Crus de Beaujolais premium ao Beaujolais Nouveau jovem.",
		DescriptionEN: "Home of Gamay, producing fruity, light wines. From premium Beaujolais Crus to young Beaujolais Nouveau.",
		Terroir:       map[string]any{"soil_pt": "Granito (norte/Crus), argila (sul)", "soil_en": "Granite (north/Crus), clay (south)", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "750mm/ano", "rainfall_en": "750mm/year"},
		MainGrapes:    []string{"Gamay"},
		WineStyles:    []string{"Tintos leves e frutados"},
	},
	{
		RegionID: "cahors", CountryID: "france", Name: "Cahors",
		DescriptionPT: "Berço do Malbec, produzindo vinhos escuros e intensos conhecidos historicamente como 'vinho negro'.",
		DescriptionEN: "Birthplace of Malbec, producing dark, intense wines historically known as 'black wine'.",
		Terroir:       map[string]any{"soil_pt": "Calcário, argila, cascalho", "soil_en": "Limestone, clay, gravel", "altitude_pt": "100-350m", "altitude_en": "100-350m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"},
		MainGrapes:    []string{"Malbec"},
		WineStyles:    []string{"Tintos escuros e intensos"},
	},
	{
		RegionID: "veneto", CountryID: "italy", Name: "Veneto",
		DescriptionPT: "Região mais produtiva da Itália, incluindo Prosecco, Amarone, Valpolicella e Soave.",
		DescriptionEN: "Italy's most productive region, including Prosecco, Amarone, Valpolicella and Soave.",
		Terroir:       map[string]any{"soil_pt": "Calcário, basalto vulcânico, aluvial", "soil_en": "Limestone, volcanic basalt, alluvial", "altitude_pt": "50-500m", "altitude_en": "50-500m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental a mediterrâneo", "type_en": "Continental to Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"},
		MainGrapes:    []string{"Corvina", "Rondinella", "Glera", "Garganega"},
		WineStyles:    []string{"Amarone (appassimento)", "Prosecco", "Soave"},
	},
	{
		RegionID: "sicily", CountryID: "italy", Name: "Sicily",
		DescriptionPT: "Maior ilha do Mediterrâneo, com vinhos do Etna vulcânico aos tintos do interior.",
		DescriptionEN: "Largest Mediterranean island, from volcanic Etna wines to interior reds.",
		Terroir:       map[string]any{"soil_pt": "Vulcânico (Etna), calcário, argila", "soil_en": "Volcanic (Etna), limestone, clay", "altitude_pt": "0-1000m (Etna)", "altitude_en": "0-1000m (Etna)", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente", "temperature_en": "Hot", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"},
		MainGrapes:    []string{"Nero d'Avola", "Nerello Mascalese", "Grillo", "Carricante"},
		WineStyles:    []string{"Tintos frutados", "Etna elegante", "Brancos frescos"},
	},
	{
		RegionID: "ribera_del_duero", CountryID: "spain", Name: "Ribera del Duero",
		DescriptionPT: "Castilla y León, produzindo Tempranillo potente de altitude. Rival de Rioja em prestígio.",
		DescriptionEN: "Castilla y León, producing powerful altitude Tempranillo. Rioja's rival in prestige.",
		Terroir:       map[string]any{"soil_pt": "Calcário, argila, cascalho", "soil_en": "Limestone, clay, gravel", "altitude_pt": "750-1000m", "altitude_en": "750-1000m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental extremo", "type_en": "Extreme continental", "temperature_pt": "Verões quentes, invernos frios", "temperature_en": "Hot summers, cold winters", "rainfall_pt": "450mm/ano", "rainfall_en": "450mm/year"},
		MainGrapes:    []string{"Tempranillo", "Cabernet Sauvignon"},
		WineStyles:    []string{"Tintos potentes e concentrados"},
	},
	{
		RegionID: "priorat", CountryID: "spain", Name: "Priorat",
		DescriptionPT: "Catalunha, renascida nos anos 1980. Solos de licorella (xisto) e vinhos potentes.",
		DescriptionEN: "Catalonia, reborn in the 1980s. Licorella (schist) soils and powerful wines.",
		Terroir:       map[string]any{"soil_pt": "Licorella (xisto com mica)", "soil_en": "Licorella (schist with mica)", "altitude_pt": "200-700m em terraços íngremes", "altitude_en": "200-700m on steep terraces", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "400mm/ano", "rainfall_en": "400mm/year"},
		MainGrapes:    []string{"Garnacha", "Cariñena", "Cabernet Sauvignon"},
		WineStyles:    []string{"Tintos concentrados e minerais"},
	},
	{
		RegionID: "rias_baixas", CountryID: "spain", Name: "Rías Baixas",
		DescriptionPT: "Galícia atlântica, produzindo brancos aromáticos de Albariño.",
		DescriptionEN: "Atlantic Galicia, producing aromatic Albariño whites.",
		Terroir:       map[string]any{"soil_pt": "Granito, areia, aluvial", "soil_en": "Granite, sand, alluvial", "altitude_pt": "0-300m", "altitude_en": "0-300m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Atlântico", "type_en": "Atlantic", "temperature_pt": "Frio e úmido", "temperature_en": "Cool and humid", "rainfall_pt": "1500mm/ano", "rainfall_en": "1500mm/year"},
		MainGrapes:    []string{"Albariño"},
		WineStyles:    []string{"Brancos aromáticos e frescos"},
	},
	{
		RegionID: "jerez", CountryID: "spain", Name: "Jerez",
		DescriptionPT: "Andaluzia, única região para Sherry autêntico. Sistema de solera.",
		DescriptionEN: "Andalusia, only region for authentic Sherry. Solera system.",
		Terroir:       map[string]any{"soil_pt": "Albariza (giz branco)", "soil_en": "Albariza (white chalk)", "altitude_pt": "0-100m", "altitude_en": "0-100m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente", "temperature_en": "Hot", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"},
		MainGrapes:    []string{"Palomino Fino", "Pedro Ximénez", "Moscatel"},
		WineStyles:    []string{"Fino", "Manzanilla", "Oloroso", "PX"},
	},
	{
		RegionID: "dao", CountryID: "portugal", Name: "Dão",
		DescriptionPT: "Centro de Portugal, produzindo tintos elegantes e brancos de Encruzado.",
		DescriptionEN: "Central Portugal, producing elegant reds and Encruzado whites.",
		Terroir:       map[string]any{"soil_pt": "Granito", "soil_en": "Granite", "altitude_pt": "400-800m", "altitude_en": "400-800m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "1200mm/ano", "rainfall_en": "1200mm/year"},
		MainGrapes:    []string{"Touriga Nacional", "Jaen", "Encruzado"},
		WineStyles:    []string{"Tintos elegantes", "Brancos minerais"},
	},
	{
		RegionID: "vinho_verde", CountryID: "portugal", Name: "Vinho Verde",
		DescriptionPT: "Noroeste de Portugal, produzindo brancos leves e frescos. Alvarinho premium.",
		DescriptionEN: "Northwestern Portugal, producing light, fresh whites. Premium Alvarinho.",
		Terroir:       map[string]any{"soil_pt": "Granito, xisto", "soil_en": "Granite, schist", "altitude_pt": "0-400m", "altitude_en": "0-400m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Atlântico", "type_en": "Atlantic", "temperature_pt": "Frio e úmido", "temperature_en": "Cool and humid", "rainfall_pt": "1500mm/ano", "rainfall_en": "1500mm/year"},
		MainGrapes:    []string{"Alvarinho", "Loureiro", "Arinto"},
		WineStyles:    []string{"Brancos leves e refrescantes", "Alvarinho premium"},
	},
	{
		RegionID: "alentejo", CountryID: "portugal", Name: "Alentejo",
		DescriptionPT: "Sul de Portugal, maior região vinícola do país. Vinhos tintos maduros e frutados.",
		DescriptionEN: "Southern Portugal, country's largest wine region. Ripe, fruity red wines.",
		Terroir:       map[string]any{"soil_pt": "Xisto, granito, argila, calcário", "soil_en": "Schist, granite, clay, limestone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"},
		MainGrapes:    []string{"Aragonez", "Trincadeira", "Alicante Bouschet", "Antão Vaz"},
		WineStyles:    []string{"Tintos frutados e acessíveis", "Brancos frescos"},
	},
	{
		RegionID: "mosel", CountryID: "germany", Name: "Mosel",
		DescriptionPT: "Vale do rio Mosel, produzindo os Rieslings mais elegantes e minerais do mundo.",
		DescriptionEN: "Mosel river valley, producing the world's most elegant, mineral Rieslings.",
		Terroir:       map[string]any{"soil_pt": "Ardósia azul e cinza", "soil_en": "Blue and grey slate", "altitude_pt": "100-350m em encostas íngremes", "altitude_en": "100-350m on steep slopes", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "650mm/ano", "rainfall_en": "650mm/year"},
		MainGrapes:    []string{"Riesling"},
		WineStyles:    []string{"Riesling do seco ao doce", "TBA", "Eiswein"},
	},
	{
		RegionID: "sonoma", CountryID: "usa", Name: "Sonoma",
		DescriptionPT: "Vizinha de Napa, mais diversa em climas e estilos. Excelentes Pinot Noir e Chardonnay.",
		DescriptionEN: "Napa's neighbor, more diverse in climates and styles. Excellent Pinot Noir and Chardonnay.",
		Terroir:       map[string]any{"soil_pt": "Vulcânico, argila, areia", "soil_en": "Volcanic, clay, sand", "altitude_pt": "0-500m", "altitude_en": "0-500m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Variado (costeiro a interior)", "type_en": "Varied (coastal to inland)", "temperature_pt": "Frio a quente", "temperature_en": "Cool to warm", "rainfall_pt": "750mm/ano", "rainfall_en": "750mm/year"},
		MainGrapes:    []string{"Pinot Noir", "Chardonnay", "Zinfandel"},
		WineStyles:    []string{"Pinot Noir elegante", "Chardonnay costeiro", "Zinfandel potente"},
	},
	{
		RegionID: "oregon", CountryID: "usa", Name: "Oregon",
		DescriptionPT: "Noroeste dos EUA, clima frio ideal para Pinot Noir. Willamette Valley.",
		DescriptionEN: "Pacific Northwest, cool climate ideal for Pinot Noir. Willamette Valley.",
		Terroir:       map[string]any{"soil_pt": "Jory (vulcânico vermelho), sedimentar", "soil_en": "Jory (red volcanic), sedimentary", "altitude_pt": "60-300m", "altitude_en": "60-300m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"},
		MainGrapes:    []string{"Pinot Noir", "Pinot Gris", "Chardonnay"},
		WineStyles:    []string{"Pinot Noir estilo borgonhês"},
	},
	{
		RegionID: "salta", CountryID: "argentina", Name: "Salta",
		DescriptionPT: "Noroeste da Argentina, vinhedos entre os mais altos do mundo (até 3.000m). Torrontés aromático.",
		DescriptionEN: "Northwestern Argentina, among the world's highest vineyards (up to 3,000m). Aromatic Torrontés.",
		Terroir:       map[string]any{"soil_pt": "Arenoso, calcário, cascalho", "soil_en": "Sandy, limestone, gravel", "altitude_pt": "1500-3000m", "altitude_en": "1500-3000m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Desértico de altitude", "type_en": "High altitude desert", "temperature_pt": "Dias quentes, noites muito frias", "temperature_en": "Hot days, very cold nights", "rainfall_pt": "150mm/ano", "rainfall_en": "150mm/year"},
		MainGrapes:    []string{"Torrontés", "Malbec"},
		WineStyles:    []string{"Torrontés aromático", "Malbec de altitude"},
	},
	{
		RegionID: "maipo", CountryID: "chile", Name: "Maipo Valley",
		DescriptionPT: "A região mais prestigiosa do Chile, nos arredores de Santiago. Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "Chile's most prestigious region, near Santiago. World-class Cabernet Sauvignon.",
		Terroir:       map[string]any{"soil_pt": "Aluvial, cascalho, argila", "soil_en": "Alluvial, gravel, clay", "altitude_pt": "400-800m", "altitude_en": "400-800m", "maritime_influence": false},
		Climate:       map[string]any{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Warm and dry", "rainfall_pt": "350mm/ano", "rainfall_en": "350mm/year"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Carménère", "Merlot"},
		WineStyles:    []string{"Cabernet Sauvignon clássico"},
	},
	{
		RegionID: "casablanca", CountryID: "chile", Name: "Casablanca Valley",
		DescriptionPT: "Região costeira fria, ideal para brancos e Pinot Noir.",
		DescriptionEN: "Cool coastal region, ideal for whites and Pinot Noir.",
		Terroir:       map[string]any{"soil_pt": "Argila, granito decomposto", "soil_en": "Clay, decomposed granite", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "450mm/ano", "rainfall_en": "450mm/year"},
		MainGrapes:    []string{"Sauvignon Blanc", "Chardonnay", "Pinot Noir"},
		WineStyles:    []string{"Brancos frescos e vibrantes", "Pinot Noir elegante"},
	},
	{
		RegionID: "coonawarra", CountryID: "australia", Name: "Coonawarra",
		DescriptionPT: "Famosa pelo solo terra rossa (argila vermelha sobre calcário). Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "Famous for terra rossa soil (red clay over limestone). World-class Cabernet Sauvignon.",
		Terroir:       map[string]any{"soil_pt": "Terra rossa sobre calcário", "soil_en": "Terra rossa over limestone", "altitude_pt": "50-70m", "altitude_en": "50-70m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Shiraz"},
		WineStyles:    []string{"Cabernet elegante e terroso"},
	},
	{
		RegionID: "margaret_river", CountryID: "australia", Name: "Margaret River",
		DescriptionPT: "Oeste da Austrália, blends bordaleses elegantes e Chardonnay de classe mundial.",
		DescriptionEN: "Western Australia, elegant Bordeaux blends and world-class Chardonnay.",
		Terroir:       map[string]any{"soil_pt": "Granito, laterita, calcário", "soil_en": "Granite, laterite, limestone", "altitude_pt": "0-200m", "altitude_en": "0-200m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Mediterrâneo marítimo", "type_en": "Maritime Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "1100mm/ano", "rainfall_en": "1100mm/year"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Chardonnay", "Sauvignon Blanc", "Sémillon"},
		WineStyles:    []string{"Blends bordaleses", "Chardonnay premium"},
	},
	{
		RegionID: "stellenbosch", CountryID: "south_africa", Name: "Stellenbosch",
		DescriptionPT: "A região mais prestigiosa da África do Sul, excelentes tintos e blends bordaleses.",
		DescriptionEN: "South Africa's most prestigious region, excellent reds and Bordeaux blends.",
		Terroir:       map[string]any{"soil_pt": "Granito decomposto, arenito, xisto", "soil_en": "Decomposed granite, sandstone, shale", "altitude_pt": "100-600m", "altitude_en": "100-600m", "maritime_influence": true},
		Climate:       map[string]any{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"},
		MainGrapes:    []string{"Cabernet Sauvignon", "Pinotage", "Shiraz", "Chenin Blanc"},
		WineStyles:    []string{"Blends bordaleses", "Pinotage único"},
	},
}
