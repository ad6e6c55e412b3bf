package gorm

import "gorm.io/datatypes"

type PoliticalParty struct {
	BaseModel
	Name         string          `gorm:"column:name;type:varchar(200);not null;uniqueIndex"`
	NameEn       string          `gorm:"column:name_en;type:varchar(200)"`
	Abbreviation string          `gorm:"column:abbreviation;type:varchar(20)"`
	Logo         string          `gorm:"column:logo"`
	Color        string          `gorm:"column:color;type:varchar(7);not null"`
	FoundedDate  *datatypes.Date `gorm:"column:founded_date"`
	Description  string          `gorm:"column:description;type:text"`
	Website      string          `gorm:"column:website"`
}

// TableName specifies the table name for GORM
func (PoliticalParty) TableName() string {
	return "political_parties"
}
