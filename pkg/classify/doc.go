// Package classify enriches a birth year or birth date with demographic labels:
// century, generation, zodiac sign and age group.
//
// Every classifier scans a fixed, ordered table and returns the first matching
// record. When nothing matches a defined fallback is returned, so classification
// never fails. Tables are package-level values that are never modified and all
// functions are safe for concurrent use.
//
// # Usage
//
//	classify.Century(1990)              // "القرن العشرين" / "20th Century"
//	classify.Generation(2000).Name      // "Generation Z"
//	classify.ZodiacSign(birth).Name     // "Capricorn" for December 25
//	classify.AgeGroupEnglish(65)        // "Senior"
//
//	start, end := classify.GenerationRange("millennials") // 1981, 1996
//
// Describe combines all classifiers for a birth date:
//
//	p := classify.Describe(birth, time.Now())
//	fmt.Println(p.Age, p.AgeGroup.In(i18n.Arabic), p.Zodiac.Symbol)
package classify
