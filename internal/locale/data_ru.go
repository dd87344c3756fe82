package locale

import "golang.org/x/text/language"

var russianTables = &tables{
	tag:         language.Russian,
	sep:         " ",
	sentenceEnd: ".",
	adjectives: []string{
		"Потрясающий", "Эргономичный", "Элегантный", "Фантастический", "Практичный", "Невероятный",
		"Интеллектуальный", "Роскошный", "Современный", "Маленький", "Великолепный", "Изящный",
		"Оригинальный", "Свободный",
	},
	materials: []string{
		"деревянный", "стальной", "бетонный", "пластиковый", "хлопковый", "гранитный", "резиновый",
		"металлический", "мягкий", "свежий", "замороженный", "керамический",
	},
	products: []string{
		"стол", "стул", "компьютер", "ноутбук", "автомобиль", "велосипед", "мяч", "сыр", "кошелек",
		"клавиатура", "шарф", "ботинок", "майка", "плащ", "сейф",
	},
	maleFirst: []string{
		"Александр", "Алексей", "Андрей", "Артём", "Борис", "Вадим", "Василий", "Виктор", "Владимир",
		"Дмитрий", "Евгений", "Иван", "Игорь", "Михаил", "Николай", "Павел", "Сергей",
	},
	femaleFirst: []string{
		"Анна", "Анастасия", "Валентина", "Вера", "Галина", "Дарья", "Екатерина", "Елена", "Ирина",
		"Ксения", "Людмила", "Мария", "Наталья", "Ольга", "Светлана", "Татьяна", "Юлия",
	},
	lastNames: []string{
		"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов",
		"Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семёнов", "Егоров",
	},
	femaleLast: []string{
		"Иванова", "Смирнова", "Кузнецова", "Попова", "Васильева", "Петрова", "Соколова", "Михайлова",
		"Новикова", "Фёдорова", "Морозова", "Волкова", "Алексеева", "Лебедева", "Семёнова", "Егорова",
	},
	companyFormats: []string{
		"{suffix} {last}",
		"{suffix} {last}-{last}",
	},
	companySuffixes: []string{"ООО", "ЗАО", "ОАО", "ИП", "НКО"},
	lorem: []string{
		"лорем", "ипсум", "долор", "сит", "амет", "консектетур", "адиписицинг", "элит", "сед", "до",
		"эиусмод", "темпор", "инцидидунт", "ут", "лаборе", "эт", "доларе", "магна", "аликуа", "энйм",
		"ад", "миним", "вениам", "квис", "ностуд", "эксерцитатион", "улламко", "лаборис", "низи",
		"аликвип", "экс", "еа", "коммодо", "консекуат",
	},
}
