// Package seeder holds the static bilingual reference datasets loaded by the
// seeding endpoints. The data is kept as Go literals so a fresh deployment can
// be populated without external fixture files.
package seeder

import "winestudy/internal/domain/catalog"

func strPtr(s string) *string { return &s }

var Countries = []catalog.Country{
	{CountryID: "france", NamePT: "França", NameEN: "France", WorldType: catalog.WorldTypeOld, FlagEmoji: "🇫🇷", DescriptionPT: "Berço da vinicultura moderna, com regiões icônicas como Bordeaux, Borgonha e Champagne.", DescriptionEN: "Birthplace of modern viticulture, with iconic regions like Bordeaux, Burgundy and Champagne.", ImageURL: strPtr("https://images.unsplash.com/photo-1499063078284-f78f7d89616a")},
	{CountryID: "italy", NamePT: "Itália", NameEN: "Italy", WorldType: catalog.WorldTypeOld, FlagEmoji: "🇮🇹", DescriptionPT: "Maior diversidade de castas autóctones do mundo, com tradições milenares.", DescriptionEN: "Greatest diversity of indigenous grape varieties in the world, with millennia-old traditions.", ImageURL: strPtr("https://images.unsplash.com/photo-1523531294919-4bcd7c65e216")},
	{CountryID: "spain", NamePT: "Espanha", NameEN: "Spain", WorldType: catalog.WorldTypeOld, FlagEmoji: "🇪🇸", DescriptionPT: "Maior área plantada de vinhas do mundo, famosa por Rioja e Jerez.", DescriptionEN: "Largest planted vineyard area in the world, famous for Rioja and Sherry.", ImageURL: strPtr("https://images.unsplash.com/photo-1558618666-fcd25c85cd64")},
	{CountryID: "portugal", NamePT: "Portugal", NameEN: "Portugal", WorldType: catalog.WorldTypeOld, FlagEmoji: "🇵🇹", DescriptionPT: "Rico em castas autóctones, berço do vinho do Porto e Madeira.", DescriptionEN: "Rich in indigenous varieties, birthplace of Port and Madeira wines.", ImageURL: strPtr("https://images.unsplash.com/photo-1555881400-74d7acaacd8b")},
	{CountryID: "germany", NamePT: "Alemanha", NameEN: "Germany", WorldType: catalog.WorldTypeOld, FlagEmoji: "🇩🇪", DescriptionPT: "Mestre em vinhos brancos elegantes, especialmente Riesling.", DescriptionEN: "Master of elegant white wines, especially Riesling.", ImageURL: strPtr("https://images.unsplash.com/photo-1569071354277-ffe06f81bbd5")},
	{CountryID: "usa", NamePT: "Estados Unidos", NameEN: "United States", WorldType: catalog.WorldTypeNew, FlagEmoji: "🇺🇸", DescriptionPT: "Quarto maior produtor mundial, com destaque para Califórnia e Oregon.", DescriptionEN: "Fourth largest producer worldwide, with California and Oregon leading.", ImageURL: strPtr("https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb")},
	{CountryID: "argentina", NamePT: "Argentina", NameEN: "Argentina", WorldType: catalog.WorldTypeNew, FlagEmoji: "🇦🇷", DescriptionPT: "Quinto maior produtor, famosa pelo Malbec de Mendoza.", DescriptionEN: "Fifth largest producer, famous for Mendoza Malbec.", ImageURL: strPtr("https://images.unsplash.com/photo-1510812431401-41d2bd2722f3")},
	{CountryID: "chile", NamePT: "Chile", NameEN: "Chile", WorldType: catalog.WorldTypeNew, FlagEmoji: "🇨🇱", DescriptionPT: "Vinhedos isolados por montanhas, oceano e deserto. Terroir único.", DescriptionEN: "Vineyards isolated by mountains, ocean and desert. Unique terroir.", ImageURL: strPtr("https://images.unsplash.com/photo-1474722883778-792e7990302f")},
	{CountryID: "australia", NamePT: "Austrália", NameEN: "Australia", WorldType: catalog.WorldTypeNew, FlagEmoji: "🇦🇺", DescriptionPT: "Shiraz potente e técnicas inovadoras de vinificação.", DescriptionEN: "Powerful Shiraz and innovative winemaking techniques.", ImageURL: strPtr("https://images.unsplash.com/photo-1566903451935-7e8835ed3e97")},
	{CountryID: "south_africa", NamePT: "África do Sul", NameEN: "South Africa", WorldType: catalog.WorldTypeNew, FlagEmoji: "🇿🇦", DescriptionPT: "Tradição desde 1659, berço da Pinotage.", DescriptionEN: "Tradition since 1659, birthplace of Pinotage.", ImageURL: strPtr("https://images.unsplash.com/photo-1585518419759-7fe2e0fbf8a6")},
}
