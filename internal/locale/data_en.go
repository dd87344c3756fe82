package locale

import "golang.org/x/text/language"

var englishTables = &tables{
	tag:         language.AmericanEnglish,
	sep:         " ",
	sentenceEnd: ".",
	adjectives: []string{
		"Awesome", "Bespoke", "Elegant", "Ergonomic", "Fantastic", "Generic", "Gorgeous", "Handcrafted",
		"Handmade", "Incredible", "Intelligent", "Luxurious", "Modern", "Practical", "Recycled", "Refined",
		"Rustic", "Sleek", "Small", "Tasty", "Unbranded", "Licensed",
	},
	materials: []string{
		"Bamboo", "Bronze", "Ceramic", "Concrete", "Cotton", "Frozen", "Fresh", "Granite", "Marble",
		"Metal", "Plastic", "Rubber", "Silk", "Soft", "Steel", "Wooden",
	},
	products: []string{
		"Bacon", "Ball", "Bike", "Car", "Chair", "Cheese", "Chicken", "Chips", "Computer", "Fish",
		"Gloves", "Hat", "Keyboard", "Mouse", "Pants", "Pizza", "Salad", "Sausages", "Shirt", "Shoes",
		"Soap", "Table", "Towels", "Tuna",
	},
	maleFirst: []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph", "Thomas",
		"Charles", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Andrew", "Kevin", "Brian",
	},
	femaleFirst: []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Sarah",
		"Karen", "Nancy", "Lisa", "Betty", "Margaret", "Sandra", "Ashley", "Emily", "Donna",
	},
	lastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez",
		"Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
		"Martin", "Lee", "Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Hall", "Young",
	},
	companyFormats: []string{
		"{last} {suffix}",
		"{last} - {last}",
		"{last}, {last} and {last}",
	},
	companySuffixes: []string{"Inc", "and Sons", "LLC", "Group"},
	lorem: []string{
		"alias", "consequatur", "aut", "perferendis", "sit", "voluptatem", "accusantium", "doloremque",
		"aperiam", "eaque", "ipsa", "quae", "ab", "illo", "inventore", "veritatis", "et", "quasi",
		"architecto", "beatae", "vitae", "dicta", "sunt", "explicabo", "nemo", "enim", "ipsam",
		"voluptas", "aspernatur", "odit", "fugit", "magni", "dolores", "eos", "qui", "ratione",
	},
}
