package models

// ServiceCategory is the catalog grouping shown in the category filter
type ServiceCategory string

const (
	CategoryHair     ServiceCategory = "Hair"
	CategoryFace     ServiceCategory = "Face"
	CategorySkincare ServiceCategory = "Skincare"
	CategoryNails    ServiceCategory = "Nails"
	CategoryGrooming ServiceCategory = "Grooming"
	CategorySpa      ServiceCategory = "Spa"
	CategoryBeauty   ServiceCategory = "Beauty"
)

// AllCategories lists categories in the order the filter panel shows them
var AllCategories = []ServiceCategory{
	CategoryHair,
	CategoryFace,
	CategorySkincare,
	CategoryNails,
	CategoryGrooming,
	CategorySpa,
	CategoryBeauty,
}

// Gender is the audience a service is offered to
type Gender string

const (
	GenderMen   Gender = "Men"
	GenderWomen Gender = "Women"
)

// AllGenders lists the selectable genders
var AllGenders = []Gender{GenderMen, GenderWomen}

// ServiceRecord is one offering in the salon catalog.
//
// Records are loaded wholesale from a catalog source and never mutated
// afterwards. OriginalPrice and Discount use 0 to mean "none".
type ServiceRecord struct {
	ID            int             `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name          string          `json:"name" gorm:"type:varchar(200);not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Category      ServiceCategory `json:"category" gorm:"type:varchar(50);index"`
	Price         float64         `json:"price" gorm:"type:decimal(10,2)"`
	OriginalPrice float64         `json:"originalPrice" gorm:"type:decimal(10,2)"`
	Discount      int             `json:"discount" gorm:"default:0"`
	Gender        Gender          `json:"gender" gorm:"type:varchar(20);index"`
	Tag           string          `json:"tag" gorm:"type:varchar(100)"`
	Image         string          `json:"image" gorm:"type:varchar(255)"`
	Featured      bool            `json:"featured" gorm:"default:false"`
}

// TableName specifies the table name for the ServiceRecord model
func (ServiceRecord) TableName() string {
	return "salon_services"
}

// HasDiscount reports whether the record carries a non-zero discount
func (s ServiceRecord) HasDiscount() bool {
	return s.Discount > 0
}

// HasOriginalPrice reports whether a struck-through original price should be shown
func (s ServiceRecord) HasOriginalPrice() bool {
	return s.OriginalPrice != 0
}
