package seeder

import "winestudy/internal/domain/study"

var StudyTracks = []study.Track{
	{
		TrackID: "basic", Level: study.LevelBasic,
		TitlePT: "Fundamentos do Vinho", TitleEN: "Wine Fundamentals",
		DescriptionPT: "Aprenda os conceitos básicos: tipos de vinho, principais uvas e como ler um rótulo.",
		DescriptionEN: "Learn the basics: wine types, main grapes and how to read a label.",
		LessonsCount:  5, ImageURL: strPtr("https://images.unsplash.com/photo-1474722883778-792e7990302f"),
	},
	{
		TrackID: "intermediate", Level: study.LevelIntermediate,
		TitlePT: "Terroir e Regiões", TitleEN: "Terroir and Regions",
		DescriptionPT: "Explore o conceito de terroir e as principais regiões vinícolas do mundo.",
		DescriptionEN: "Explore the concept of terroir and the main wine regions of the world.",
		LessonsCount:  8, ImageURL: strPtr("https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb"),
	},
	{
		TrackID: "advanced", Level: study.LevelAdvanced,
		TitlePT: "Mestria em Vinhos", TitleEN: "Wine Mastery",
		DescriptionPT: "Estudo avançado: comparação de regiões, técnicas de vinificação e envelhecimento.",
		DescriptionEN: "Advanced study: region comparison, winemaking techniques and aging.",
		LessonsCount:  10, ImageURL: strPtr("https://images.unsplash.com/photo-1510812431401-41d2bd2722f3"),
	},
}

var BasicLessons = []study.Lesson{
	{
		LessonID: "basic_1", TrackID: "basic", Order: 1,
		TitlePT: "O que é Vinho?", TitleEN: "What is Wine?",
		ContentPT: "Vinho é uma bebida alcoólica produzida pela fermentação do suco de uvas. A levedura consome o açúcar das uvas e o transforma em álcool e dióxido de carbono. Este processo milenar resulta em uma das bebidas mais complexas e apreciadas do mundo.\n\nExistem três tipos principais de vinho:\n- **Vinho Tinto**: Feito com uvas tintas, fermentado com as cascas\n- **Vinho Branco**: Geralmente de uvas brancas, sem contato com cascas\n- **Vinho Rosé**: Breve contato com cascas de uvas tintas",
		ContentEN: "Wine is an alcoholic beverage produced by fermenting grape juice. Yeast consumes the sugar in grapes and transforms it into alcohol and carbon dioxide. This ancient process results in one of the most complex and appreciated beverages in the world.\n\nThere are three main types of wine:\n- **Red Wine**: Made from red grapes, fermented with the skins\n- **White Wine**: Usually from white grapes, without skin contact\n- **Rosé Wine**: Brief contact with red grape skins",
		DurationMinutes: 10,
	},
	{
		LessonID: "basic_2", TrackID: "basic", Order: 2,
		TitlePT: "Principais Castas Tintas", TitleEN: "Main Red Grape Varieties",
		ContentPT: "As castas são as variedades de uva usadas para fazer vinho. Cada casta tem características únicas de aroma, sabor e estrutura.\n\n**Cabernet Sauvignon**: A rainha das uvas tintas. Produz vinhos encorpados com taninos firmes e aromas de cassis, cedro e pimentão verde.\n\n**Merlot**: Mais macia e frutada que a Cabernet, com notas de ameixa e chocolate.\n\n**Pinot Noir**: Elegante e delicada, com aromas de cereja, framboesa e terra úmida.\n\n**Syrah/Shiraz**: Potente e especiada, com pimenta preta e frutas negras.",
		ContentEN: "Grape varieties are the types of grapes used to make wine. Each variety has unique characteristics of aroma, flavor and structure.\n\n**Cabernet Sauvignon**: The queen of red grapes. Produces full-bodied wines with firm tannins and aromas of blackcurrant, cedar and green pepper.\n\n**Merlot**: Softer and fruitier than Cabernet, with plum and chocolate notes.\n\n**Pinot Noir**: Elegant and delicate, with cherry, raspberry and earthy aromas.\n\n**Syrah/Shiraz**: Powerful and spicy, with black pepper and dark fruits.",
		DurationMinutes: 15,
	},
	{
		LessonID: "basic_3", TrackID: "basic", Order: 3,
		TitlePT: "Principais Castas Brancas", TitleEN: "Main White Grape Varieties",
		ContentPT: "As uvas brancas produzem vinhos que variam do leve e refrescante ao rico e cremoso.\n\n**Chardonnay**: A mais versátil das brancas. Pode ser mineral e fresca (Chablis) ou amanteigada e rica (Califórnia).\n\n**Sauvignon Blanc**: Aromática e refrescante, com notas de grapefruit, maracujá e capim-limão.\n\n**Riesling**: Rainha da Alemanha, com acidez vibrante e aromas de lima, pêssego e notas de petróleo com a idade.\n\n**Pinot Grigio/Gris**: Leve e neutra na Itália, mais rica na Alsácia.",
		ContentEN: "White grapes produce wines ranging from light and refreshing to rich and creamy.\n\n**Chardonnay**: The most versatile white grape. Can be mineral and fresh (Chablis) or buttery and rich (California).\n\n**Sauvignon Blanc**: Aromatic and refreshing, with grapefruit, passion fruit and lemongrass notes.\n\n**Riesling**: Queen of Germany, with vibrant acidity and aromas of lime, peach and petrol notes with age.\n\n**Pinot Grigio/Gris**: Light and neutral in Italy, richer in Alsace.",
		DurationMinutes: 15,
	},
	{
		LessonID: "basic_4", TrackID: "basic", Order: 4,
		TitlePT: "Como Ler um Rótulo", TitleEN: "How to Read a Wine Label",
		ContentPT: "O rótulo do vinho contém informações essenciais:\n\n**Produtor/Vinícola**: Quem fez o vinho\n**Região/Denominação**: De onde vem (ex: Bordeaux AOC)\n**Safra/Vintage**: O ano da colheita\n**Casta**: A variedade de uva (nem sempre presente)\n**Teor Alcoólico**: Percentual de álcool\n\n**Classificações importantes:**\n- França: AOC/AOP, Vin de Pays\n- Itália: DOCG, DOC, IGT\n- Espanha: DOCa, DO, Vino de la Tierra\n- Portugal: DOC, Vinho Regional",
		ContentEN: "The wine label contains essential information:\n\n**Producer/Winery**: Who made the wine\n**Region/Appellation**: Where it comes from (e.g., Bordeaux AOC)\n**Vintage**: The harvest year\n**Grape Variety**: The grape type (not always present)\n**Alcohol Content**: Percentage of alcohol\n\n**Important classifications:**\n- France: AOC/AOP, Vin de Pays\n- Italy: DOCG, DOC, IGT\n- Spain: DOCa, DO, Vino de la Tierra\n- Portugal: DOC, Vinho Regional",
		DurationMinutes: 12,
	},
	{
		LessonID: "basic_5", TrackID: "basic", Order: 5,
		TitlePT: "Influência do Clima", TitleEN: "Climate Influence",
		ContentPT: "O clima é fundamental para o estilo do vinho:\n\n**Clima Frio** (Borgonha, Alemanha):\n- Acidez mais alta\n- Álcool mais baixo\n- Aromas mais delicados e florais\n- Corpo mais leve\n\n**Clima Quente** (Austrália, Argentina):\n- Mais açúcar, mais álcool\n- Frutas mais maduras e concentradas\n- Taninos mais macios\n- Corpo mais encorpado\n\n**Clima Moderado** (Bordeaux, Califórnia):\n- Equilíbrio entre acidez e fruta\n- Potencial de envelhecimento\n- Complexidade aromática",
		ContentEN: "Climate is fundamental to wine style:\n\n**Cool Climate** (Burgundy, Germany):\n- Higher acidity\n- Lower alcohol\n- More delicate and floral aromas\n- Lighter body\n\n**Warm Climate** (Australia, Argentina):\n- More sugar, more alcohol\n- Riper, more concentrated fruits\n- Softer tannins\n- Fuller body\n\n**Moderate Climate** (Bordeaux, California):\n- Balance between acidity and fruit\n- Aging potential\n- Aromatic complexity",
		DurationMinutes: 12,
	},
}

var BasicQuestions = []study.QuizQuestion{
	{
		QuestionID: "q1", TrackID: "basic", LessonID: strPtr("basic_1"), QuestionType: "multiple_choice",
		QuestionPT: "Qual é o processo principal na produção de vinho?",
		QuestionEN: "What is the main process in wine production?",
		OptionsPT:  []string{"Destilação", "Fermentação", "Pasteurização", "Carbonatação"},
		OptionsEN:  []string{"Distillation", "Fermentation", "Pasteurization", "Carbonation"},
		CorrectAnswer: 1,
		ExplanationPT: "A fermentação é o processo onde as leveduras transformam o açúcar das uvas em álcool e CO2.",
		ExplanationEN: "Fermentation is the process where yeast transforms grape sugar into alcohol and CO2.",
	},
	{
		QuestionID: "q2", TrackID: "basic", LessonID: strPtr("basic_2"), QuestionType: "multiple_choice",
		QuestionPT: "Qual casta é conhecida como a 'rainha das uvas tintas'?",
		QuestionEN: "Which grape is known as the 'queen of red grapes'?",
		OptionsPT:  []string{"Merlot", "Pinot Noir", "Cabernet Sauvignon", "Syrah"},
		OptionsEN:  []string{"Merlot", "Pinot Noir", "Cabernet Sauvignon", "Syrah"},
		CorrectAnswer: 2,
		ExplanationPT: "Cabernet Sauvignon é a uva tinta mais plantada do mundo e produz vinhos de grande longevidade.",
		ExplanationEN: "Cabernet Sauvignon is the most planted red grape in the world and produces wines with great aging potential.",
	},
	{
		QuestionID: "q3", TrackID: "basic", LessonID: strPtr("basic_3"), QuestionType: "true_false",
		QuestionPT: "Riesling é uma uva originária da Alemanha.",
		QuestionEN: "Riesling is a grape variety originating from Germany.",
		OptionsPT:  []string{"Verdadeiro", "Falso"},
		OptionsEN:  []string{"True", "False"},
		CorrectAnswer: 0,
		ExplanationPT: "Riesling é de fato originária da região do Reno na Alemanha, sendo a uva branca mais nobre do país.",
		ExplanationEN: "Riesling indeed originates from the Rhine region in Germany, being the noblest white grape of the country.",
	},
	{
		QuestionID: "q4", TrackID: "basic", LessonID: strPtr("basic_4"), QuestionType: "multiple_choice",
		QuestionPT: "O que significa DOC em vinhos italianos?",
		QuestionEN: "What does DOC mean in Italian wines?",
		OptionsPT:  []string{"Denominação de Origem Controlada", "Denominação Original Certificada", "Documento de Origem do Cultivo", "Destino Original Conhecido"},
		OptionsEN:  []string{"Controlled Designation of Origin", "Certified Original Designation", "Cultivation Origin Document", "Known Original Destination"},
		CorrectAnswer: 0,
		ExplanationPT: "DOC (Denominazione di Origine Controllata) é uma classificação de qualidade italiana que garante a origem e métodos de produção.",
		ExplanationEN: "DOC (Denominazione di Origine Controllata) is an Italian quality classification that guarantees origin and production methods.",
	},
	{
		QuestionID: "q5", TrackID: "basic", LessonID: strPtr("basic_5"), QuestionType: "multiple_choice",
		QuestionPT: "Em climas frios, os vinhos tendem a ter:",
		QuestionEN: "In cool climates, wines tend to have:",
		OptionsPT:  []string{"Mais álcool e taninos fortes", "Acidez alta e corpo leve", "Baixa acidez e muito açúcar residual", "Aromas de frutas tropicais"},
		OptionsEN:  []string{"More alcohol and strong tannins", "High acidity and light body", "Low acidity and lots of residual sugar", "Tropical fruit aromas"},
		CorrectAnswer: 1,
		ExplanationPT: "Climas frios resultam em uvas com mais acidez e menos açúcar, produzindo vinhos mais leves e frescos.",
		ExplanationEN: "Cool climates result in grapes with more acidity and less sugar, producing lighter, fresher wines.",
	},
	{
		QuestionID: "q6", TrackID: "basic", LessonID: strPtr("basic_2"), QuestionType: "multiple_choice",
		QuestionPT: "Qual característica é típica da Pinot Noir?",
		QuestionEN: "What characteristic is typical of Pinot Noir?",
		OptionsPT:  []string{"Taninos muito altos", "Cor escura e densa", "Elegância e delicadeza", "Alta produtividade"},
		OptionsEN:  []string{"Very high tannins", "Dark, dense color", "Elegance and delicacy", "High productivity"},
		CorrectAnswer: 2,
		ExplanationPT: "Pinot Noir é conhecida por produzir vinhos elegantes e delicados, com taninos suaves e cor clara.",
		ExplanationEN: "Pinot Noir is known for producing elegant and delicate wines, with soft tannins and light color.",
	},
}
