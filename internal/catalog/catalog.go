// Package catalog holds the static vehicle option tables used by the
// listing form: brands, per-brand model lists, colors, engine and power
// options, and the feature checklist. Everything here is read-only
// lookup data keyed by string; the tables are never mutated after init.
package catalog

// Condition values accepted for a listing.
const (
	ConditionNew     = "new"
	ConditionUsed    = "used"
	ConditionDamaged = "damaged"
)

var brands = []string{
	"Alfa Romeo", "Audi", "BMW", "BYD", "Chery", "Chevrolet", "Citroen", "Dacia", "Daewoo", "Fiat",
	"Ford", "GAZ", "Geely", "Genesis", "Great Wall Motors", "Honda", "Hongqi", "Hyundai", "Jaguar",
	"Kia", "Lada", "Land Rover", "Li Auto", "Mercedes", "Mini", "Moskvitch", "Nissan", "Nio", "Opel",
	"Peugeot", "Porsche", "Renault", "Saab", "Seat", "Skoda", "SsangYong", "TOGG", "Toyota",
	"Trumpchi", "UAZ", "Volkswagen", "Volvo", "XPeng", "Zeekr", "Ferrari",
}

var modelsByBrand = map[string][]string{
	"TOGG":              {"T10X", "T10F"},
	"Audi":              {"A1", "A3", "A4", "A5", "A6", "A7", "A8", "Q2", "Q3", "Q5", "Q7", "Q8", "e-tron"},
	"BMW":               {"1 Serisi", "2 Serisi", "3 Serisi", "4 Serisi", "5 Serisi", "6 Serisi", "7 Serisi", "8 Serisi", "X1", "X2", "X3", "X4", "X5", "X6", "X7", "Z4", "i3", "i4", "iX", "i8"},
	"Chevrolet":         {"Aveo", "Captiva", "Cruze", "Spark", "Orlando", "Camaro", "Corvette", "Tahoe", "Malibu"},
	"Citroen":           {"C1", "C3", "C4", "C5", "Berlingo", "C-Elysee", "C4 Cactus"},
	"Dacia":             {"Sandero", "Duster", "Logan", "Lodgy", "Dokker", "Jogger", "Dokker Van"},
	"Daewoo":            {"Matiz", "Lanos", "Nubira", "Leganza"},
	"Fiat":              {"500", "Panda", "Tipo", "Egea", "Doblo", "Fiorino", "500L", "500X"},
	"Ford":              {"Fiesta", "Focus", "Mondeo", "Kuga", "Puma", "EcoSport", "Mustang", "Ranger", "Explorer"},
	"Honda":             {"Civic", "Accord", "Jazz", "CR-V", "HR-V", "e"},
	"Hyundai":           {"i10", "i20", "i30", "Accent", "Elantra", "Tucson", "Santa Fe", "Kona", "Ioniq 5", "Ioniq 6"},
	"Kia":               {"Picanto", "Rio", "Ceed", "Sportage", "Sorento", "Stonic", "Niro", "EV6", "K5", "K8", "K9", "Carnival", "Seltos", "Telluride"},
	"Mercedes":          {"A-Serisi", "B-Serisi", "C-Serisi", "E-Serisi", "S-Serisi", "GLA", "GLC", "GLE", "GLS", "CLA", "CLS", "EQC", "EQA", "EQB", "EQE", "EQS"},
	"Nissan":            {"Micra", "Juke", "Qashqai", "X-Trail", "Leaf", "Navara", "Ariya"},
	"Opel":              {"Corsa", "Astra", "Insignia", "Mokka", "Crossland", "Grandland"},
	"Peugeot":           {"108", "208", "308", "508", "2008", "3008", "5008"},
	"Renault":           {"Clio", "Megane", "Captur", "Kadjar", "Talisman", "Zoe", "Symbol", "Austral"},
	"Seat":              {"Ibiza", "Leon", "Arona", "Ateca", "Tarraco"},
	"Skoda":             {"Fabia", "Octavia", "Superb", "Kamiq", "Karoq", "Kodiaq", "Scala", "Enyaq"},
	"Toyota":            {"Yaris", "Corolla", "Camry", "C-HR", "RAV4", "Prius", "Auris", "Hilux"},
	"Volkswagen":        {"Polo", "Golf", "Passat", "Tiguan", "T-Roc", "T-Cross", "Touareg", "Arteon", "ID.3", "ID.4"},
	"Volvo":             {"S60", "S90", "V40", "V60", "V90", "XC40", "XC60", "XC90"},
	"BYD":               {"Seagull", "Dolphin", "Qin", "Song", "Yuan Plus", "Seal", "Han", "Tang", "Atto 3", "Sealion 7"},
	"Chery":             {"Tiggo 3x", "Tiggo 5x", "Tiggo 7", "Tiggo 8", "Tiggo 9", "Omoda 5", "Omoda E5", "Arrizo 5", "Arrizo 8"},
	"Geely":             {"Emgrand", "Binrui", "Xingyue", "Boyue", "Geometry A", "Geometry C"},
	"Nio":               {"ET5", "ET7", "ES6", "ES8", "EC6", "EL6"},
	"XPeng":             {"P5", "P7", "G3", "G6", "G9"},
	"Li Auto":           {"Li ONE", "L7", "L8", "L9"},
	"Great Wall Motors": {"Haval H6", "Haval Jolion", "Tank 300", "Tank 500", "Ora Good Cat", "Ora Ballet Cat"},
	"Zeekr":             {"001", "009", "X"},
	"Trumpchi":          {"GS3", "GS4", "GS8", "Emkoo", "Empow", "M6", "M8"},
	"Hongqi":            {"H5", "H6", "H9", "E-HS9", "HS5", "HS7", "HQ9"},
	"Lada":              {"Granta", "Vesta", "Niva Legend", "Niva Travel", "Largus"},
	"Moskvitch":         {"Moskvitch 3", "Moskvitch 3e", "Moskvitch 5", "Moskvitch 6", "Moskvitch 8"},
	"GAZ":               {"Volga Siber", "GAZelle Next", "GAZ M20 Pobeda"},
	"UAZ":               {"Patriot", "Hunter", "Pickup", "Profi"},
	"Alfa Romeo":        {"Giulia", "Stelvio", "Tonale"},
	"Jaguar":            {"XE", "XF", "F-Type", "E-Pace", "F-Pace", "I-Pace"},
	"Land Rover":        {"Defender", "Discovery", "Range Rover Evoque", "Range Rover Sport"},
	"Mini":              {"Cooper", "Clubman", "Countryman", "Electric"},
	"Porsche":           {"911", "Cayenne", "Macan", "Panamera", "Taycan"},
	"Saab":              {"9-3", "9-5"},
	"Ferrari":           {"488", "812 Superfast", "F8 Tributo", "SF90 Stradale", "Roma", "Portofino", "LaFerrari", "California", "Purosangue"},
	"Genesis":           {"G70", "G80", "G90", "GV60", "GV70", "GV80"},
	"SsangYong":         {"Tivoli", "Korando", "Rexton", "Musso", "Torres", "Torres EVX"},
}

var colors = []string{
	"Beyaz", "Siyah", "Gri", "Gümüş", "Mavi", "Kırmızı", "Yeşil", "Sarı",
	"Turuncu", "Kahverengi", "Bordo", "Bej", "Mor", "Pembe", "Altın", "Bronz",
}

var engineSizes = []string{
	"1.0", "1.2", "1.3", "1.4", "1.5", "1.6", "1.8", "2.0", "2.2", "2.4",
	"2.5", "2.7", "3.0", "3.5", "4.0", "4.5", "5.0", "Elektrikli",
}

var enginePowers = []string{
	"75 HP", "90 HP", "105 HP", "120 HP", "136 HP", "150 HP", "170 HP",
	"190 HP", "210 HP", "230 HP", "250 HP", "270 HP", "300 HP", "330 HP",
	"360 HP", "400 HP", "450 HP", "500+ HP",
}

var bodyTypes = []string{
	"Sedan", "Hatchback", "Station Wagon", "SUV", "Crossover",
	"Coupe", "Convertible", "Van", "Pickup",
}

var conditions = []string{ConditionNew, ConditionUsed, ConditionDamaged}

var currencies = []string{"TRY", "USD", "EUR", "GBP"}

var doorCounts = []string{"2", "3", "4", "5"}

var features = []string{
	"ABS", "Klima", "Hız Sabitleyici", "Yokuş Kalkış Desteği", "ESP",
	"Şerit Takip Sistemi", "Geri Görüş Kamerası", "Park Sensörü",
	"Deri Döşeme", "Elektrikli Ayna", "Elektrikli Cam", "Merkezi Kilit",
	"Yağmur Sensörü", "Far Sensörü", "Start/Stop", "Sunroof",
	"Navigasyon", "Bluetooth", "USB", "Aux", "Adaptive Cruise Control",
	"Çarpışma Önleyici Sistem", "Otomatik Park Sistemi", "Head-Up Display",
	"Harman Kardon Ses Sistemi", "Android Auto", "Apple CarPlay",
	"Isıtmalı Koltuklar", "Havalandırmalı Koltuklar", "Elektrikli Koltuklar",
	"Masajlı Koltuklar", "Kablosuz Şarj Ünitesi", "360 Derece Kamera",
	"Otomatik Uzun Far Asistanı", "Akıllı Şerit Değiştirme Sistemi",
}

func copyOf(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Brands returns the known car brands.
func Brands() []string { return copyOf(brands) }

// ModelsFor returns the model list for a brand. Unknown brands
// yield an empty list.
func ModelsFor(brand string) []string {
	models, ok := modelsByBrand[brand]
	if !ok {
		return []string{}
	}
	return copyOf(models)
}

func Colors() []string       { return copyOf(colors) }
func EngineSizes() []string  { return copyOf(engineSizes) }
func EnginePowers() []string { return copyOf(enginePowers) }
func BodyTypes() []string    { return copyOf(bodyTypes) }
func Currencies() []string   { return copyOf(currencies) }
func Conditions() []string   { return copyOf(conditions) }
func DoorCounts() []string   { return copyOf(doorCounts) }
func Features() []string     { return copyOf(features) }

func IsBrand(v string) bool      { return contains(brands, v) }
func IsColor(v string) bool      { return contains(colors, v) }
func IsEngineSize(v string) bool { return contains(engineSizes, v) }
func IsPower(v string) bool      { return contains(enginePowers, v) }
func IsBodyType(v string) bool   { return contains(bodyTypes, v) }
func IsCondition(v string) bool  { return contains(conditions, v) }
func IsCurrency(v string) bool   { return contains(currencies, v) }
func IsDoorCount(v string) bool  { return contains(doorCounts, v) }
func IsFeature(v string) bool    { return contains(features, v) }
