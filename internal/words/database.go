package words

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Word struct {
	Word       string     `json:"word"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Triple is the three words of a game, middle being the one to guess.
type Triple struct {
	Top    string `json:"top"`
	Middle string `json:"middle"`
	Bottom string `json:"bottom"`
}

var Database = map[string][]Word{
	"animals": {
		{"cat", "animals", DifficultyEasy},
		{"dog", "animals", DifficultyEasy},
		{"elephant", "animals", DifficultyMedium},
		{"butterfly", "animals", DifficultyMedium},
		{"rhinoceros", "animals", DifficultyHard},
		{"hippopotamus", "animals", DifficultyHard},
	},
	"food": {
		{"pizza", "food", DifficultyEasy},
		{"burger", "food", DifficultyEasy},
		{"spaghetti", "food", DifficultyMedium},
		{"sandwich", "food", DifficultyMedium},
		{"cappuccino", "food", DifficultyHard},
		{"quinoa", "food", DifficultyHard},
	},
	"colors": {
		{"red", "colors", DifficultyEasy},
		{"blue", "colors", DifficultyEasy},
		{"purple", "colors", DifficultyMedium},
		{"orange", "colors", DifficultyMedium},
		{"turquoise", "colors", DifficultyHard},
		{"magenta", "colors", DifficultyHard},
	},
	"sports": {
		{"soccer", "sports", DifficultyEasy},
		{"tennis", "sports", DifficultyEasy},
		{"basketball", "sports", DifficultyMedium},
		{"volleyball", "sports", DifficultyMedium},
		{"badminton", "sports", DifficultyHard},
		{"gymnastics", "sports", DifficultyHard},
	},
	"technology": {
		{"phone", "technology", DifficultyEasy},
		{"laptop", "technology", DifficultyEasy},
		{"keyboard", "technology", DifficultyMedium},
		{"monitor", "technology", DifficultyMedium},
		{"microprocessor", "technology", DifficultyHard},
		{"cryptocurrency", "technology", DifficultyHard},
	},
}

// Combinations are the curated word triples the operator seeds on chain.
var Combinations = []Triple{
	{"Cat", "Animal", "Dog"},
	{"Satoshi", "Cryptocurrency", "Bitcoin"},
	{"Apple", "Fruit", "Orange"},
	{"Tesla", "Electric", "Nissan"},
	{"Facebook", "Social", "Twitter"},
	{"Google", "Search", "Bing"},
	{"Netflix", "Streaming", "Disney"},
	{"Uber", "Ride", "Lyft"},
	{"Spotify", "Music", "Apple"},
	{"Amazon", "Ecommerce", "Shopify"},
	{"Microsoft", "Software", "Adobe"},
	{"Nike", "Sport", "Adidas"},
	{"McDonald", "Fast", "KFC"},
	{"Coca", "Cola", "Pepsi"},
	{"BMW", "Luxury", "Mercedes"},
}

func Categories() []string {
	categories := make([]string, 0, len(Database))
	for c := range Database {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// GenerateGameWords picks three distinct words from a single category. An
// empty or unknown category means any category.
func GenerateGameWords(rng *rand.Rand, category string) Triple {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool, ok := Database[category]
	if !ok {
		categories := Categories()
		pool = Database[categories[rng.Intn(len(categories))]]
	}

	picked := rng.Perm(len(pool))[:3]
	return Triple{
		Top:    pool[picked[0]].Word,
		Middle: pool[picked[1]].Word,
		Bottom: pool[picked[2]].Word,
	}
}

// TimeBonus awards 0-100 points for the share of the time limit left.
func TimeBonus(elapsed, limit time.Duration) int {
	if limit <= 0 {
		return 0
	}

	remaining := limit - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return int(math.Floor(float64(remaining) / float64(limit) * 100))
}
