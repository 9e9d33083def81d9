package app

import "github.com/stpnv0/SitterMatch/internal/domain"

// The in-memory store starts from these; keep in step with
// migrations/00002_catalog.sql.
var defaultCities = []domain.CreateCityInput{
	{Name: "תל אביב", Neighborhoods: []string{"רמת אביב", "צפון ישן", "פלורנטין", "נווה צדק", "יפו", "רמת החייל"}},
	{Name: "ירושלים", Neighborhoods: []string{"גאולה", "מאה שערים", "רמות", "גבעת שאול", "בית וגן", "קטמון"}},
	{Name: "בני ברק", Neighborhoods: []string{"פרדס כץ", "עזרא", "רמת אלחנן", "כפר אברהם", "רמת אהרון"}},
	{Name: "פתח תקווה", Neighborhoods: []string{"קרית אריה", "נווה גנים", "עין גנים", "סגולה", "כפר גנים"}},
	{Name: "רמת גן", Neighborhoods: []string{"רמת אפעל", "רמת חן", "תל בנימין", "קרית בורוכוב", "רמת יצחק"}},
	{Name: "חולון", Neighborhoods: []string{"תל גיבורים", "קרית שרת", "נווה רמז", "קרית בן גוריון"}},
	{Name: "ראשון לציון", Neighborhoods: []string{"שיכון ותיקים", "נווה דקלים", "רמת אליהו", "נאות אשכול"}},
	{Name: "אשדוד", Neighborhoods: []string{"גבעת יונה", "רובע ז", "רובע יא", "רובע טז"}},
	{Name: "נתניה", Neighborhoods: []string{"קרית השרון", "רמת פולג", "נאות גולדה", "קרית נורדאו"}},
	{Name: "באר שבע", Neighborhoods: []string{"רמות", "נווה זאב", "נווה נוי", "רמת בקע"}},
}

var defaultStyles = []domain.CreateCommunityStyleInput{
	{Label: "דתי", Description: "משפחות דתיות"},
	{Label: "חילוני", Description: "משפחות חילוניות"},
	{Label: "מסורתי", Description: "משפחות מסורתיות"},
	{Label: "חרדי", Description: "משפחות חרדיות"},
	{Label: "ללא העדפה", Description: "פתוח לכל הקהילות"},
}
