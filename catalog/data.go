package catalog

import "dorata/models"

// Pizza prices by size. Every size-based item uses this table.
var SizePrices = map[string]float64{
	models.SizeSenior: 17,
	models.SizeMega:   25,
}

// Menu is the pizzeria's catalog: compiled-in reference data, grouped by
// category in display order. Never mutated at runtime.
var Menu = []models.MenuCategory{
	{
		CategoryID:  "pizzas-tomate",
		Name:        "Pizzas Base Sauce Tomate",
		Description: "Nos pizzas traditionnelles sur base tomate",
		HasSizes:    true,
		Items: []models.MenuItem{
			{ItemID: "margheritta", Name: "Margheritta", Description: "Mozzarella, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "royale", Name: "Royale", Description: "Mozzarella, jambon de dinde, champignons", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "orientale", Name: "Orientale", Description: "Mozzarella, merguez, poivrons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "montagnana", Name: "Montagnana", Description: "Mozzarella, merguez, pomme de terre, gorgonzola, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "mexicaine", Name: "Mexicaine", Description: "Mozzarella, viande hachée, merguez, poivrons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "buffalo", Name: "Buffalo", Description: "Mozzarella, viande hachée, chorizo, poivrons, oignons", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "andalouse", Name: "L'Andalouse", Description: "Mozzarella, chorizo, oignons, poivrons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "bolognaise", Name: "Bolognaise", Description: "Mozzarella, viande hachée, poivrons, oignons, œuf", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "atomique", Name: "Atomique", Description: "Mozzarella, harissa, merguez, kebab, oignons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "kebab", Name: "Kebab", Description: "Mozzarella, kebab, poivrons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "calzone", Name: "Calzone", Description: "Mozzarella, jambon, œuf", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "provencale", Name: "Provençale", Description: "Mozzarella, thon, oignons, tomates fraîches, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "chicken-chikka", Name: "Chicken Chikka", Description: "Mozzarella, chicken chikka, poivrons, pomme de terre, oignons, olives", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "4-fromages", Name: "4 Fromages", Description: "Mozzarella, chèvre, gorgonzola, parmesan", HasSizes: true, Category: "pizzas-tomate"},
			{ItemID: "vegetarienne", Name: "La Végétarienne", Description: "Mozzarella, tomates fraîches, oignons, champignons, poivrons, artichauts, olives", HasSizes: true, Category: "pizzas-tomate"},
		},
	},
	{
		CategoryID:  "pizzas-creme",
		Name:        "Pizzas Base Crème Fraîche",
		Description: "Nos pizzas onctueuses sur base crème",
		HasSizes:    true,
		Items: []models.MenuItem{
			{ItemID: "campagnarde", Name: "Campagnarde", Description: "Viande hachée, pomme de terre, chèvre, olives", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "boursin", Name: "Boursin", Description: "Viande hachée, pomme de terre, boursin, olives", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "savoyarde", Name: "Savoyarde", Description: "Lardons, pomme de terre, oignons, reblochon", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "raclette", Name: "Raclette", Description: "Lardons, pomme de terre, fromage à raclette", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "paysanne", Name: "Paysanne", Description: "Lardons, champignons, oignons, œuf", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "delicieuse", Name: "Délicieuse", Description: "Viande hachée, chicken chikka, poivrons, pomme de terre, olives", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "country-plus", Name: "Country Plus", Description: "Viande hachée, poulet rôti, pomme de terre, olives", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "fermiere", Name: "Fermière", Description: "Poulet rôti, pomme de terre, champignons, olives", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "chevre-miel", Name: "Chèvre Miel", Description: "Chèvre, miel", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "fatoria", Name: "Fatoria", Description: "Jambon de dinde, champignons, chèvre", HasSizes: true, Category: "pizzas-creme"},
			{ItemID: "saumon", Name: "Saumon", Description: "Saumon, pomme de terre", HasSizes: true, Category: "pizzas-creme"},
		},
	},
	{
		CategoryID:  "pizzas-chef",
		Name:        "Les Pizzas du Chef",
		Description: "Les créations originales du chef",
		HasSizes:    true,
		Items: []models.MenuItem{
			{ItemID: "cannibale", Name: "La Cannibale", Description: "Sauce barbecue, viande hachée, chorizo, merguez", HasSizes: true, Category: "pizzas-chef"},
			{ItemID: "forza", Name: "La Forza", Description: "Sauce rose, kebab, poivrons, oignons, chèvre", HasSizes: true, Category: "pizzas-chef"},
			{ItemID: "boisee", Name: "La Boisée", Description: "Sauce fromagère, poulet, champignons, olives", HasSizes: true, Category: "pizzas-chef"},
			{ItemID: "dijonnaise", Name: "La Dijonnaise", Description: "Crème de moutarde, chicken chikka, jambon de dinde, champignons, olives", HasSizes: true, Category: "pizzas-chef"},
		},
	},
	{
		CategoryID:  "tenders-nuggets",
		Name:        "Tenders & Nuggets",
		Description: "Nos menus croustillants",
		Items: []models.MenuItem{
			{ItemID: "menu-tenders", Name: "Menu Tenders x4", Description: "4 tenders de poulet avec frites et sauce", Price: 7.50, Category: "tenders-nuggets"},
			{ItemID: "menu-nuggets", Name: "Menu Nuggets x8", Description: "8 nuggets de poulet avec frites et sauce", Price: 7.50, Category: "tenders-nuggets"},
		},
	},
	{
		CategoryID:  "burgers",
		Name:        "Burgers",
		Description: "Nos burgers généreux",
		Items: []models.MenuItem{
			{ItemID: "big-burger", Name: "Big Burger", Description: "Notre burger signature avec steak, cheddar, salade, tomate et sauce maison", Price: 9, Category: "burgers"},
			{ItemID: "classic-burger", Name: "Classic Burger", Description: "Burger classique avec steak, salade, tomate et sauce", Price: 6, Category: "burgers"},
		},
	},
	{
		CategoryID:  "specialites",
		Name:        "Spécialités Doratos & Sandwichs",
		Description: "Nos spécialités maison",
		Items: []models.MenuItem{
			{ItemID: "doratos", Name: "Le Doratos", Description: "Notre spécialité maison signature", Price: 10, Category: "specialites"},
			{ItemID: "sandwich-crispy", Name: "Sandwich Crispy", Description: "Poulet crispy, salade, tomate, sauce", Price: 8, Category: "specialites"},
			{ItemID: "sandwich-chicken", Name: "Sandwich Chicken", Description: "Poulet grillé, salade, tomate, sauce", Price: 8, Category: "specialites"},
		},
	},
	{
		CategoryID:  "tacos",
		Name:        "Tacos",
		Description: "Nos tacos généreux",
		Items: []models.MenuItem{
			{ItemID: "tacos-1-viande", Name: "Tacos 1 Viande", Description: "Tacos avec 1 viande au choix, frites, sauce fromagère", Price: 8, Category: "tacos"},
		},
	},
	{
		CategoryID:  "desserts",
		Name:        "Desserts",
		Description: "Pour finir en douceur",
		Items: []models.MenuItem{
			{ItemID: "tiramisu", Name: "Tiramisu Maison", Description: "Notre tiramisu fait maison", Price: 3.50, Category: "desserts"},
			{ItemID: "tarte-daim", Name: "Tarte au Daim", Description: "Tarte au chocolat et daim", Price: 3, Category: "desserts"},
		},
	},
	{
		CategoryID:  "boissons",
		Name:        "Boissons",
		Description: "Pour accompagner votre repas",
		Items: []models.MenuItem{
			{ItemID: "canette", Name: "Canette 33cl", Description: "Coca-Cola, Fanta, Sprite, Ice Tea", Price: 1.50, Category: "boissons"},
			{ItemID: "bouteille", Name: "Bouteille", Description: "Bouteille 1.5L au choix", Price: 3, Category: "boissons"},
		},
	},
}
