package seeder

import "winestudy/internal/domain/study"

// ExpandedLessons carries the intermediate and advanced study content loaded
// by the second-stage seed.
var ExpandedLessons = []study.Lesson{
	{
		LessonID: "intermediate_1", TrackID: "intermediate", Order: 1,
		TitlePT: "O que é Terroir?", TitleEN: "What is Terroir?",
		ContentPT: "Terroir é o conjunto de fatores naturais que moldam o caráter de um vinho:\n\n**Solo**: Calcário, argila, xisto, granito — cada tipo drena e retém calor de forma diferente\n**Clima**: Temperatura, chuva e sol determinam a maturação das uvas\n**Topografia**: Altitude, inclinação e orientação das encostas\n**Tradição humana**: Séculos de escolhas de cultivo e vinificação\n\nDois vinhos da mesma casta, feitos da mesma forma, podem ser completamente diferentes por causa do terroir. É por isso que um Chablis nunca será igual a um Chardonnay da Califórnia.",
		ContentEN: "Terroir is the set of natural factors that shape a wine's character:\n\n**Soil**: Limestone, clay, schist, granite — each type drains and retains heat differently\n**Climate**: Temperature, rain and sun determine grape ripening\n**Topography**: Altitude, slope and aspect of the hillsides\n**Human tradition**: Centuries of growing and winemaking choices\n\nTwo wines from the same grape, made the same way, can be completely different because of terroir. That is why a Chablis will never taste like a California Chardonnay.",
		DurationMinutes: 15,
	},
	{
		LessonID: "intermediate_2", TrackID: "intermediate", Order: 2,
		TitlePT: "Velho Mundo vs Novo Mundo", TitleEN: "Old World vs New World",
		ContentPT: "A divisão entre Velho e Novo Mundo é central no estudo do vinho:\n\n**Velho Mundo** (França, Itália, Espanha, Portugal, Alemanha):\n- Tradições seculares e leis rígidas de denominação\n- Rótulos nomeiam a região, não a casta\n- Estilo geralmente mais contido, com acidez e mineralidade\n\n**Novo Mundo** (EUA, Argentina, Chile, Austrália, África do Sul):\n- Liberdade de cultivo e vinificação\n- Rótulos nomeiam a casta\n- Estilo geralmente mais frutado e encorpado\n\nA distinção está cada vez menos nítida: produtores do Novo Mundo buscam elegância, e o Velho Mundo adota técnicas modernas.",
		ContentEN: "The Old World / New World divide is central to wine study:\n\n**Old World** (France, Italy, Spain, Portugal, Germany):\n- Centuries-old traditions and strict appellation laws\n- Labels name the region, not the grape\n- Generally more restrained style, with acidity and minerality\n\n**New World** (USA, Argentina, Chile, Australia, South Africa):\n- Freedom in growing and winemaking\n- Labels name the grape\n- Generally fruitier, fuller style\n\nThe distinction is blurring: New World producers chase elegance while the Old World adopts modern techniques.",
		DurationMinutes: 15,
	},
	{
		LessonID: "intermediate_3", TrackID: "intermediate", Order: 3,
		TitlePT: "Grandes Regiões da França", TitleEN: "Great Regions of France",
		ContentPT: "A França define o padrão mundial em quase todos os estilos:\n\n**Bordeaux**: Blends tintos de Cabernet Sauvignon e Merlot, divididos entre Margem Esquerda e Direita\n**Borgonha**: Pinot Noir e Chardonnay expressando terroir em parcelas minúsculas\n**Champagne**: Espumantes pelo método tradicional em clima frio de giz\n**Rhône**: Syrah no norte, blends de Grenache no sul\n**Loire**: Sauvignon Blanc, Chenin Blanc e Cabernet Franc em estilos leves\n**Alsácia**: Brancos aromáticos de influência germânica",
		ContentEN: "France sets the world standard in almost every style:\n\n**Bordeaux**: Cabernet Sauvignon and Merlot red blends, split between Left and Right Bank\n**Burgundy**: Pinot Noir and Chardonnay expressing terroir in tiny parcels\n**Champagne**: Traditional method sparkling from a cool chalk climate\n**Rhône**: Syrah in the north, Grenache blends in the south\n**Loire**: Sauvignon Blanc, Chenin Blanc and Cabernet Franc in lighter styles\n**Alsace**: German-influenced aromatic whites",
		DurationMinutes: 18,
	},
	{
		LessonID: "intermediate_4", TrackID: "intermediate", Order: 4,
		TitlePT: "Solos e seus Efeitos", TitleEN: "Soils and their Effects",
		ContentPT: "O solo influencia drenagem, retenção de calor e vigor da videira:\n\n**Calcário** (Champagne, Borgonha): drenagem excelente, retém frescor, vinhos minerais\n**Xisto** (Douro, Priorat, Mosel): retém calor, força raízes profundas, vinhos concentrados\n**Cascalho** (Médoc): drena e reflete calor, ideal para Cabernet Sauvignon\n**Argila** (Pomerol, Rioja): fria e úmida, favorece Merlot e Tempranillo\n**Vulcânico** (Etna, Napa): rico em minerais, vinhos de caráter fumê\n\nNenhum solo é 'melhor': cada casta tem seu par ideal.",
		ContentEN: "Soil influences drainage, heat retention and vine vigor:\n\n**Limestone** (Champagne, Burgundy): excellent drainage, retains freshness, mineral wines\n**Schist** (Douro, Priorat, Mosel): retains heat, forces deep roots, concentrated wines\n**Gravel** (Médoc): drains and reflects heat, ideal for Cabernet Sauvignon\n**Clay** (Pomerol, Rioja): cool and moist, favors Merlot and Tempranillo\n**Volcanic** (Etna, Napa): mineral-rich, wines with smoky character\n\nNo soil is 'best': each grape has its ideal match.",
		DurationMinutes: 15,
	},
	{
		LessonID: "advanced_1", TrackID: "advanced", Order: 1,
		TitlePT: "Técnicas de Vinificação", TitleEN: "Winemaking Techniques",
		ContentPT: "Decisões na adega moldam o vinho tanto quanto o vinhedo:\n\n**Maceração**: tempo de contato com as cascas define cor e taninos\n**Fermentação malolática**: converte ácido málico em láctico, amaciando brancos e tintos\n**Bâtonnage**: agitação das borras para textura cremosa\n**Carvalho**: barricas novas dão baunilha e especiarias; usadas, apenas micro-oxigenação\n**Appassimento**: secagem das uvas para concentração (Amarone)\n**Método tradicional**: segunda fermentação na garrafa para espumantes",
		ContentEN: "Cellar decisions shape wine as much as the vineyard:\n\n**Maceration**: skin contact time defines color and tannins\n**Malolactic fermentation**: converts malic acid to lactic, softening whites and reds\n**Bâtonnage**: lees stirring for creamy texture\n**Oak**: new barrels give vanilla and spice; used ones only micro-oxygenation\n**Appassimento**: drying grapes for concentration (Amarone)\n**Traditional method**: second fermentation in bottle for sparkling wines",
		DurationMinutes: 20,
	},
	{
		LessonID: "advanced_2", TrackID: "advanced", Order: 2,
		TitlePT: "Envelhecimento e Guarda", TitleEN: "Aging and Cellaring",
		ContentPT: "Poucos vinhos melhoram com décadas; a maioria deve ser bebida jovem.\n\n**O que permite envelhecer:**\n- Acidez alta (Riesling, Nebbiolo)\n- Taninos firmes (Barolo, Bordeaux)\n- Açúcar residual (Sauternes, Porto)\n- Concentração de fruta\n\n**Evolução típica de um tinto:**\nFrutas frescas → frutas secas → notas terciárias (couro, tabaco, sous-bois)\n\n**Condições de guarda:** 12-14°C constantes, umidade ~70%, escuro, garrafa deitada. Variações de temperatura são o maior inimigo.",
		ContentEN: "Few wines improve over decades; most should be drunk young.\n\n**What enables aging:**\n- High acidity (Riesling, Nebbiolo)\n- Firm tannins (Barolo, Bordeaux)\n- Residual sugar (Sauternes, Port)\n- Fruit concentration\n\n**Typical red wine evolution:**\nFresh fruit → dried fruit → tertiary notes (leather, tobacco, forest floor)\n\n**Cellaring conditions:** constant 12-14°C, ~70% humidity, dark, bottle lying down. Temperature swings are the biggest enemy.",
		DurationMinutes: 18,
	},
	{
		LessonID: "advanced_3", TrackID: "advanced", Order: 3,
		TitlePT: "Degustação Comparativa", TitleEN: "Comparative Tasting",
		ContentPT: "A degustação comparativa revela o que provas isoladas escondem:\n\n**Horizontal**: mesma safra, produtores diferentes — revela estilo e terroir\n**Vertical**: mesmo produtor, safras diferentes — revela efeito do clima anual\n**Às cegas**: sem ver o rótulo — elimina viés de preço e marca\n\n**Método sistemático:**\n1. Visual: cor, intensidade, lágrimas\n2. Olfato: intensidade, famílias aromáticas, evolução\n3. Paladar: acidez, taninos, corpo, álcool, final\n4. Conclusão: qualidade, tipicidade, potencial de guarda\n\nCompare sempre um elemento por vez entre as taças.",
		ContentEN: "Comparative tasting reveals what isolated tastings hide:\n\n**Horizontal**: same vintage, different producers — reveals style and terroir\n**Vertical**: same producer, different vintages — reveals annual climate effect\n**Blind**: without seeing the label — removes price and brand bias\n\n**Systematic method:**\n1. Sight: color, intensity, tears\n2. Nose: intensity, aroma families, evolution\n3. Palate: acidity, tannins, body, alcohol, finish\n4. Conclusion: quality, typicity, aging potential\n\nAlways compare one element at a time across glasses.",
		DurationMinutes: 20,
	},
}

var ExpandedQuestions = []study.QuizQuestion{
	{
		QuestionID: "q_int_1", TrackID: "intermediate", LessonID: strPtr("intermediate_1"), QuestionType: "multiple_choice",
		QuestionPT: "Qual fator NÃO faz parte do conceito de terroir?",
		QuestionEN: "Which factor is NOT part of the terroir concept?",
		OptionsPT:  []string{"Solo", "Clima", "Marca da vinícola", "Topografia"},
		OptionsEN:  []string{"Soil", "Climate", "Winery brand", "Topography"},
		CorrectAnswer: 2,
		ExplanationPT: "Terroir engloba solo, clima, topografia e tradição humana — a marca comercial não faz parte.",
		ExplanationEN: "Terroir covers soil, climate, topography and human tradition — the commercial brand is not part of it.",
	},
	{
		QuestionID: "q_int_2", TrackID: "intermediate", LessonID: strPtr("intermediate_2"), QuestionType: "true_false",
		QuestionPT: "Rótulos do Velho Mundo geralmente destacam a região, não a casta.",
		QuestionEN: "Old World labels usually highlight the region, not the grape.",
		OptionsPT:  []string{"Verdadeiro", "Falso"},
		OptionsEN:  []string{"True", "False"},
		CorrectAnswer: 0,
		ExplanationPT: "No Velho Mundo a denominação de origem domina o rótulo; a casta fica implícita nas regras da região.",
		ExplanationEN: "In the Old World the appellation dominates the label; the grape is implied by the region's rules.",
	},
	{
		QuestionID: "q_int_3", TrackID: "intermediate", LessonID: strPtr("intermediate_3"), QuestionType: "multiple_choice",
		QuestionPT: "Qual região francesa é famosa pelos blends de Grenache no sul?",
		QuestionEN: "Which French region is famous for Grenache blends in the south?",
		OptionsPT:  []string{"Borgonha", "Rhône", "Alsácia", "Champagne"},
		OptionsEN:  []string{"Burgundy", "Rhône", "Alsace", "Champagne"},
		CorrectAnswer: 1,
		ExplanationPT: "O sul do Rhône produz blends liderados por Grenache, como Châteauneuf-du-Pape.",
		ExplanationEN: "The southern Rhône produces Grenache-led blends such as Châteauneuf-du-Pape.",
	},
	{
		QuestionID: "q_int_4", TrackID: "intermediate", LessonID: strPtr("intermediate_4"), QuestionType: "multiple_choice",
		QuestionPT: "Qual solo é característico do Douro e do Priorat?",
		QuestionEN: "Which soil is characteristic of the Douro and Priorat?",
		OptionsPT:  []string{"Cascalho", "Xisto", "Giz", "Argila"},
		OptionsEN:  []string{"Gravel", "Schist", "Chalk", "Clay"},
		CorrectAnswer: 1,
		ExplanationPT: "Ambas as regiões têm solos de xisto, que retêm calor e forçam raízes profundas.",
		ExplanationEN: "Both regions have schist soils, which retain heat and force deep roots.",
	},
	{
		QuestionID: "q_adv_1", TrackID: "advanced", LessonID: strPtr("advanced_1"), QuestionType: "multiple_choice",
		QuestionPT: "O que a fermentação malolática faz no vinho?",
		QuestionEN: "What does malolactic fermentation do to wine?",
		OptionsPT:  []string{"Aumenta o álcool", "Converte ácido málico em láctico", "Adiciona taninos", "Cria as bolhas do espumante"},
		OptionsEN:  []string{"Increases alcohol", "Converts malic acid to lactic", "Adds tannins", "Creates sparkling bubbles"},
		CorrectAnswer: 1,
		ExplanationPT: "A malolática converte o ácido málico, mais agressivo, em láctico, mais macio e cremoso.",
		ExplanationEN: "Malolactic conversion turns sharper malic acid into softer, creamier lactic acid.",
	},
	{
		QuestionID: "q_adv_2", TrackID: "advanced", LessonID: strPtr("advanced_2"), QuestionType: "multiple_choice",
		QuestionPT: "Qual elemento NÃO contribui para o potencial de guarda de um vinho?",
		QuestionEN: "Which element does NOT contribute to a wine's aging potential?",
		OptionsPT:  []string{"Acidez alta", "Taninos firmes", "Garrafa com rótulo bonito", "Açúcar residual"},
		OptionsEN:  []string{"High acidity", "Firm tannins", "A pretty label", "Residual sugar"},
		CorrectAnswer: 2,
		ExplanationPT: "Acidez, taninos, açúcar e concentração preservam o vinho; o rótulo não tem efeito algum.",
		ExplanationEN: "Acidity, tannins, sugar and concentration preserve wine; the label has no effect at all.",
	},
	{
		QuestionID: "q_adv_3", TrackID: "advanced", LessonID: strPtr("advanced_3"), QuestionType: "true_false",
		QuestionPT: "Uma degustação vertical compara safras diferentes do mesmo produtor.",
		QuestionEN: "A vertical tasting compares different vintages from the same producer.",
		OptionsPT:  []string{"Verdadeiro", "Falso"},
		OptionsEN:  []string{"True", "False"},
		CorrectAnswer: 0,
		ExplanationPT: "Vertical fixa o produtor e varia a safra; horizontal fixa a safra e varia o produtor.",
		ExplanationEN: "Vertical fixes the producer and varies the vintage; horizontal fixes the vintage and varies the producer.",
	},
}
