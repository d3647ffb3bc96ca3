package dataset

import "strconv"

// Sample returns the canonical built-in dataset used whenever a real source
// is unavailable. Five well-known movies, every cell present.
func Sample() *Dataset {
	titles := []string{"Avatar", "Titanic", "Avengers", "Joker", "Inception"}
	releases := []string{"2009-12-18", "1997-12-19", "2012-05-04", "2019-10-04", "2010-07-16"}
	budgets := []float64{237000000, 200000000, 220000000, 55000000, 160000000}
	revenues := []float64{2787965087, 2257844554, 1518815515, 1074219000, 825532764}
	runtimes := []float64{162, 194, 143, 122, 148}
	votes := []float64{7.2, 7.5, 7.8, 8.4, 8.8}
	genres := []string{"Action", "Drama", "Action", "Drama", "Sci-Fi"}
	directors := []string{"James Cameron", "James Cameron", "Joss Whedon", "Todd Phillips", "Christopher Nolan"}
	english := []string{"true", "true", "true", "true", "true"}

	cols := []*Column{
		newColumn("title", Categorical, titles),
		newColumn("release_date", Date, releases),
		newColumn("budget", Numeric, formatFloats(budgets)),
		newColumn("revenue", Numeric, formatFloats(revenues)),
		newColumn("runtime", Numeric, formatFloats(runtimes)),
		newColumn("vote_average", Numeric, formatFloats(votes)),
		newColumn("genre", Categorical, genres),
		newColumn("director", Categorical, directors),
		newColumn("is_english", Boolean, english),
	}
	return build("sample", cols)
}

func formatFloats(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}
