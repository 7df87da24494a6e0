package seeder

import "winestudy/internal/domain/catalog"

var AromaTags = []catalog.AromaTag{
	{TagID: "citrus", NamePT: "Cítrico", NameEN: "Citrus", Category: "fruit", Emoji: "🍋"},
	{TagID: "green_apple", NamePT: "Maçã verde", NameEN: "Green apple", Category: "fruit", Emoji: "🍏"},
	{TagID: "stone_fruit", NamePT: "Fruta de caroço", NameEN: "Stone fruit", Category: "fruit", Emoji: "🍑"},
	{TagID: "tropical", NamePT: "Tropical", NameEN: "Tropical", Category: "fruit", Emoji: "🥭"},
	{TagID: "red_berries", NamePT: "Frutas vermelhas", NameEN: "Red berries", Category: "fruit", Emoji: "🍒"},
	{TagID: "black_berries", NamePT: "Frutas negras", NameEN: "Black berries", Category: "fruit", Emoji: "🫐"},
	{TagID: "floral", NamePT: "Floral", NameEN: "Floral", Category: "floral", Emoji: "🌸"},
	{TagID: "rose", NamePT: "Rosa", NameEN: "Rose", Category: "floral", Emoji: "🌹"},
	{TagID: "violet", NamePT: "Violeta", NameEN: "Violet", Category: "floral", Emoji: "💜"},
	{TagID: "herbal", NamePT: "Herbal", NameEN: "Herbal", Category: "vegetal", Emoji: "🌿"},
	{TagID: "grass", NamePT: "Gramíneas", NameEN: "Grass", Category: "vegetal", Emoji: "🌱"},
	{TagID: "pepper", NamePT: "Pimenta", NameEN: "Pepper", Category: "spice", Emoji: "🌶️"},
	{TagID: "vanilla", NamePT: "Baunilha", NameEN: "Vanilla", Category: "oak", Emoji: "🍦"},
	{TagID: "oak", NamePT: "Carvalho", NameEN: "Oak", Category: "oak", Emoji: "🪵"},
	{TagID: "toast", NamePT: "Tostado", NameEN: "Toast", Category: "oak", Emoji: "🍞"},
	{TagID: "butter", NamePT: "Manteiga", NameEN: "Butter", Category: "dairy", Emoji: "🧈"},
	{TagID: "chocolate", NamePT: "Chocolate", NameEN: "Chocolate", Category: "sweet", Emoji: "🍫"},
	{TagID: "coffee", NamePT: "Café", NameEN: "Coffee", Category: "roasted", Emoji: "☕"},
	{TagID: "leather", NamePT: "Couro", NameEN: "Leather", Category: "earth", Emoji: "👞"},
	{TagID: "earth", NamePT: "Terra", NameEN: "Earth", Category: "earth", Emoji: "🌍"},
	{TagID: "mineral", NamePT: "Mineral", NameEN: "Mineral", Category: "mineral", Emoji: "🪨"},
	{TagID: "smoke", NamePT: "Defumado", NameEN: "Smoke", Category: "roasted", Emoji: "💨"},
	{TagID: "honey", NamePT: "Mel", NameEN: "Honey", Category: "sweet", Emoji: "🍯"},
	{TagID: "nuts", NamePT: "Nozes", NameEN: "Nuts", Category: "nuts", Emoji: "🥜"},
}
