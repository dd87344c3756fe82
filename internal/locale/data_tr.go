package locale

import "golang.org/x/text/language"

var turkishTables = &tables{
	tag:         language.Turkish,
	sep:         " ",
	sentenceEnd: ".",
	adjectives: []string{
		"Harika", "Şık", "Zarif", "Ergonomik", "Muhteşem", "Jenerik", "Güzel", "El Yapımı",
		"İnanılmaz", "Akıllı", "Lüks", "Modern", "Pratik", "Geri Dönüştürülmüş", "Rustik", "Küçük",
	},
	materials: []string{
		"Ahşap", "Bambu", "Bronz", "Seramik", "Beton", "Pamuklu", "Granit", "Mermer", "Metal",
		"Plastik", "Kauçuk", "İpek", "Çelik", "Yumuşak",
	},
	products: []string{
		"Sandalye", "Masa", "Bilgisayar", "Klavye", "Fare", "Şapka", "Eldiven", "Ayakkabı", "Gömlek",
		"Pantolon", "Havlu", "Sabun", "Bisiklet", "Araba", "Top", "Peynir", "Salata", "Pizza",
	},
	maleFirst: []string{
		"Ahmet", "Mehmet", "Mustafa", "Ali", "Hüseyin", "Hasan", "İbrahim", "Murat", "Emre", "Burak",
		"Can", "Kerem", "Oğuz", "Serkan", "Yusuf", "Volkan",
	},
	femaleFirst: []string{
		"Ayşe", "Fatma", "Emine", "Hatice", "Zeynep", "Elif", "Meryem", "Şerife", "Sultan", "Esra",
		"Merve", "Büşra", "Derya", "Selin", "Gül", "Deniz",
	},
	lastNames: []string{
		"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Yıldırım", "Öztürk", "Aydın", "Özdemir",
		"Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Kara", "Koç", "Kurt", "Özkan", "Şimşek",
	},
	companyFormats: []string{
		"{last} {suffix}",
		"{last} {last} {suffix}",
	},
	companySuffixes: []string{"A.Ş.", "Ltd. Şti.", "Holding", "ve Ortakları"},
	lorem: []string{
		"ad", "aliquam", "amet", "aut", "beatae", "consectetur", "dolor", "dolorem", "eius", "enim",
		"eos", "est", "et", "harum", "ipsum", "iure", "labore", "magnam", "minima", "nisi", "odio",
		"omnis", "qui", "quia", "quis", "sed", "sit", "sunt", "ut", "velit", "vero", "voluptas",
	},
}
