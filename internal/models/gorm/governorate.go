package gorm

// Governorate is a top-level administrative region.
type Governorate struct {
	BaseModel
	Name       string   `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	NameEn     string   `gorm:"column:name_en;type:varchar(100)"`
	Code       string   `gorm:"column:code;type:varchar(10);not null;uniqueIndex"`
	Population *int64   `gorm:"column:population"`
	Area       *float64 `gorm:"column:area"`

	// Relationships
	Districts []District `gorm:"foreignKey:GovernorateID"`
}

// TableName specifies the table name for GORM
func (Governorate) TableName() string {
	return "governorates"
}

// District is an electoral district inside one governorate.
type District struct {
	BaseModel
	Name          string `gorm:"column:name;type:varchar(200);not null"`
	GovernorateID string `gorm:"column:governorate_id;type:uuid;not null;uniqueIndex:idx_districts_governorate_number"`
	Number        int    `gorm:"column:number;not null;uniqueIndex:idx_districts_governorate_number"`
	Description   string `gorm:"column:description;type:text"`

	// Relationships
	Governorate *Governorate `gorm:"foreignKey:GovernorateID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (District) TableName() string {
	return "districts"
}

// GovernorateName is empty when the governorate was not preloaded.
func (d District) GovernorateName() string {
	if d.Governorate == nil {
		return ""
	}
	return d.Governorate.Name
}
