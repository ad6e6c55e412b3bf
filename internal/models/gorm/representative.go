package gorm

import (
	"math"
	"time"

	"naebak/content-service/internal/constants"

	"gorm.io/datatypes"
)

// Representative is a candidate, sitting or former member of parliament.
type Representative struct {
	BaseModel
	Name       string                         `gorm:"column:name;type:varchar(255);not null"`
	NameEn     string                         `gorm:"column:name_en;type:varchar(255)"`
	Slug       string                         `gorm:"column:slug;type:varchar(300);not null;uniqueIndex"`
	Gender     constants.Gender               `gorm:"column:gender;type:varchar(10);not null"`
	BirthDate  *datatypes.Date                `gorm:"column:birth_date"`
	Profession string                         `gorm:"column:profession;type:varchar(200)"`
	Education  string                         `gorm:"column:education;type:text"`
	PartyID    *string                        `gorm:"column:party_id;type:uuid;index:idx_representatives_district_party,priority:2"`
	DistrictID string                         `gorm:"column:district_id;type:uuid;not null;index:idx_representatives_district_party,priority:1"`
	Status     constants.RepresentativeStatus `gorm:"column:status;type:varchar(20);not null;index:idx_representatives_status_distinguished,priority:1"`

	ElectoralNumber string `gorm:"column:electoral_number;type:varchar(50)"`
	ElectoralSymbol string `gorm:"column:electoral_symbol;type:varchar(255)"`
	ElectionYear    int    `gorm:"column:election_year;not null"`

	ProfileImage string `gorm:"column:profile_image"`
	BannerImage  string `gorm:"column:banner_image"`

	Rating             float64 `gorm:"column:rating;type:numeric(3,1);not null;index;check:chk_representatives_rating,rating >= 0 AND rating <= 5"`
	RatingCount        int     `gorm:"column:rating_count;not null"`
	SolvedComplaints   int     `gorm:"column:solved_complaints;not null"`
	ReceivedComplaints int     `gorm:"column:received_complaints;not null"`

	IsDistinguished bool `gorm:"column:is_distinguished;not null;index:idx_representatives_status_distinguished,priority:2"`
	AdminApproved   bool `gorm:"column:admin_approved;not null"`

	Bio              string `gorm:"column:bio;type:text"`
	AchievementsText string `gorm:"column:achievements;type:text"`
	ElectoralProgram string `gorm:"column:electoral_program;type:text"`

	Phone    string `gorm:"column:phone;type:varchar(20)"`
	Email    string `gorm:"column:email"`
	Facebook string `gorm:"column:facebook"`
	Twitter  string `gorm:"column:twitter"`
	Website  string `gorm:"column:website"`

	// Relationships
	Party            *PoliticalParty       `gorm:"foreignKey:PartyID;constraint:OnDelete:SET NULL"`
	District         *District             `gorm:"foreignKey:DistrictID;constraint:OnDelete:CASCADE"`
	AdditionalImages []RepresentativeImage `gorm:"foreignKey:RepresentativeID"`
	AchievementList  []Achievement         `gorm:"foreignKey:RepresentativeID"`
	News             []News                `gorm:"foreignKey:RepresentativeID"`
	Events           []Event               `gorm:"foreignKey:RepresentativeID"`
}

// TableName specifies the table name for GORM
func (Representative) TableName() string {
	return "representatives"
}

// Age in whole years on the given day, nil without a birth date.
func (r Representative) Age(today time.Time) *int {
	if r.BirthDate == nil {
		return nil
	}
	born := time.Time(*r.BirthDate)
	age := today.Year() - born.Year()
	if today.Month() < born.Month() || (today.Month() == born.Month() && today.Day() < born.Day()) {
		age--
	}
	return &age
}

// SuccessRate is solved/received complaints as a percentage with one decimal.
func (r Representative) SuccessRate() float64 {
	if r.ReceivedComplaints <= 0 {
		return 0.0
	}
	rate := float64(r.SolvedComplaints) / float64(r.ReceivedComplaints) * 100
	return math.Round(rate*10) / 10
}

// Governorate resolves through the district; nil unless District.Governorate was preloaded.
func (r Representative) Governorate() *Governorate {
	if r.District == nil {
		return nil
	}
	return r.District.Governorate
}
