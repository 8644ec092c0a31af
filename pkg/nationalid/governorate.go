package nationalid

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/egyptid/core/i18n"
)

// AbroadCode is the governorate code used for births registered outside Egypt.
const AbroadCode = "88"

var governorates = map[string]i18n.Text{
	"01": i18n.T("القاهرة", "Cairo"),
	"02": i18n.T("الإسكندرية", "Alexandria"),
	"03": i18n.T("بورسعيد", "Port Said"),
	"04": i18n.T("السويس", "Suez"),
	"11": i18n.T("دمياط", "Damietta"),
	"12": i18n.T("الدقهلية", "Dakahlia"),
	"13": i18n.T("الشرقية", "Sharqia"),
	"14": i18n.T("القليوبية", "Qalyubia"),
	"15": i18n.T("كفر الشيخ", "Kafr El Sheikh"),
	"16": i18n.T("الغربية", "Gharbia"),
	"17": i18n.T("المنوفية", "Monufia"),
	"18": i18n.T("البحيرة", "Beheira"),
	"19": i18n.T("الإسماعيلية", "Ismailia"),
	"21": i18n.T("الجيزة", "Giza"),
	"22": i18n.T("بني سويف", "Beni Suef"),
	"23": i18n.T("الفيوم", "Fayoum"),
	"24": i18n.T("المنيا", "Minya"),
	"25": i18n.T("أسيوط", "Assiut"),
	"26": i18n.T("سوهاج", "Sohag"),
	"27": i18n.T("قنا", "Qena"),
	"28": i18n.T("أسوان", "Aswan"),
	"29": i18n.T("الأقصر", "Luxor"),
	"31": i18n.T("البحر الأحمر", "Red Sea"),
	"32": i18n.T("الوادي الجديد", "New Valley"),
	"33": i18n.T("مطروح", "Matrouh"),
	"34": i18n.T("شمال سيناء", "North Sinai"),
	"35": i18n.T("جنوب سيناء", "South Sinai"),
	AbroadCode: i18n.T("خارج الجمهورية", "Born Abroad"),
}

// Governorate returns the name registered for a two-digit governorate code.
func Governorate(code string) (i18n.Text, bool) {
	name, ok := governorates[code]
	return name, ok
}

// GovernorateCodes returns every known code in ascending order.
func GovernorateCodes() []string {
	return slices.Sorted(maps.Keys(governorates))
}
