package grid

import "strings"

// MaxSheetNameLength is the workbook limit on sheet names, in characters.
const MaxSheetNameLength = 31

var sheetNameStripper = strings.NewReplacer(
	`\`, "", "/", "", "*", "", "?", "", "[", "", "]", "", ":", "",
)

// SheetName strips the characters workbooks forbid in sheet names and then
// truncates to MaxSheetNameLength. Distinct inputs may collide.
func SheetName(name string) string {
	clean := sheetNameStripper.Replace(name)
	runes := []rune(clean)
	if len(runes) > MaxSheetNameLength {
		runes = runes[:MaxSheetNameLength]
	}
	return string(runes)
}
