package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexBadCharacter                Code = 1001
	LexUnterminatedString          Code = 1002
	LexUnterminatedComment         Code = 1003
	LexNumberTooLarge              Code = 1004
	LexUnterminatedMultiLineString Code = 1005
	LexUnrecognizedEscape          Code = 1006

	// Парсерные
	SynUnexpectedToken Code = 2001

	// Семантические проверки, которые парсер делает на лету
	SemDuplicateTable            Code = 3001
	SemDuplicateColumn           Code = 3002
	SemDuplicateEnumEntry        Code = 3003
	SemDuplicateSetting          Code = 3004
	SemDuplicateEnum             Code = 3005
	SemUnknownColumnSetting      Code = 3010
	SemUnknownTableSetting       Code = 3011
	SemUnknownIndexSetting       Code = 3012
	SemUnknownEnumEntrySetting   Code = 3013
	SemUnknownProjectSetting     Code = 3014
	SemUnknownRelationSetting    Code = 3015
	SemUnknownIndexType          Code = 3020
	SemDisallowedDefaultValue    Code = 3021
	SemUnknownRelationshipAction Code = 3022
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                    "Unknown error",
		LexBadCharacter:                "Bad character",
		LexUnterminatedString:          "Unterminated string",
		LexUnterminatedComment:         "Unterminated multi-line comment",
		LexNumberTooLarge:              "Number too large",
		LexUnterminatedMultiLineString: "Unterminated multi-line string",
		LexUnrecognizedEscape:          "Unrecognized escape sequence",
		SynUnexpectedToken:             "Unexpected token",
		SemDuplicateTable:              "Duplicate table name",
		SemDuplicateColumn:             "Duplicate column name",
		SemDuplicateEnumEntry:          "Duplicate enum entry",
		SemDuplicateSetting:            "Duplicate setting",
		SemDuplicateEnum:               "Duplicate enum name",
		SemUnknownColumnSetting:        "Unknown column setting",
		SemUnknownTableSetting:         "Unknown table setting",
		SemUnknownIndexSetting:         "Unknown index setting",
		SemUnknownEnumEntrySetting:     "Unknown enum entry setting",
		SemUnknownProjectSetting:       "Unknown project setting",
		SemUnknownRelationSetting:      "Unknown relationship setting",
		SemUnknownIndexType:            "Unknown index type",
		SemDisallowedDefaultValue:      "Disallowed default value",
		SemUnknownRelationshipAction:   "Unknown relationship action",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
