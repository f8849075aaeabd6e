package model

// PropertyStatus is the listing state of a property.
type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "ACTIVE"
	PropertyStatusSold   PropertyStatus = "SOLD"
	PropertyStatusRent   PropertyStatus = "RENT"
)

// OwnershipType distinguishes rentals from outright ownership.
type OwnershipType string

const (
	OwnershipTypeRent      OwnershipType = "RENT"
	OwnershipTypeOwnership OwnershipType = "OWNERSHIP"
)

type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type PropertyImage struct {
	ID         int    `json:"id"`
	URL        string `json:"url"`
	IsMain     bool   `json:"isMain"`
	Order      int    `json:"order"`
	PropertyID int    `json:"propertyId"`
	CreatedAt  string `json:"createdAt"`
}

type PropertyFloorplan struct {
	ID         int    `json:"id"`
	URL        string `json:"url"`
	Name       string `json:"name"`
	PropertyID int    `json:"propertyId"`
	CreatedAt  string `json:"createdAt"`
}

// PropertyTranslation is one localized rendition of a property's textual
// content. Language here is content language, not the UI locale.
type PropertyTranslation struct {
	ID          int    `json:"id"`
	PropertyID  int    `json:"propertyId"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Size        string `json:"size"`
	Beds        string `json:"beds"`
	Baths       string `json:"baths"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Property struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	CategoryID    int            `json:"categoryId"`
	Category      *Category      `json:"category"`
	Status        PropertyStatus `json:"status"`
	OwnershipType OwnershipType  `json:"ownershipType"`
	Description   string         `json:"description"`
	City          string         `json:"city"`
	Street        string         `json:"street"`
	Country       string         `json:"country"`
	Latitude      *Number        `json:"latitude"`
	Longitude     *Number        `json:"longitude"`
	VirtualTour   *string        `json:"virtualTour"`
	VideoURL      *string        `json:"videoUrl"`
	Size          Number         `json:"size"`
	Beds          int            `json:"beds"`
	Baths         int            `json:"baths"`
	Layout        *string        `json:"layout"`

	Price            Number  `json:"price"`
	DiscountedPrice  *Number `json:"discountedPrice"`
	PriceHidden      bool    `json:"priceHidden"`
	ReservationPrice *string `json:"reservationPrice"`

	BuildingStoriesNumber       *int    `json:"buildingStoriesNumber"`
	BuildingCondition           *string `json:"buildingCondition"`
	ApartmentCondition          *string `json:"apartmentCondition"`
	AboveGroundFloors           *int    `json:"aboveGroundFloors"`
	ReconstructionYearApartment *int    `json:"reconstructionYearApartment"`
	ReconstructionYearBuilding  *int    `json:"reconstructionYearBuilding"`
	TotalAboveGroundFloors      *int    `json:"totalAboveGroundFloors"`
	TotalUndergroundFloors      *int    `json:"totalUndergroundFloors"`

	FloorArea       *Number `json:"floorArea"`
	BuiltUpArea     *Number `json:"builtUpArea"`
	GardenHouseArea *Number `json:"gardenHouseArea"`
	TerraceArea     *Number `json:"terraceArea"`
	TotalLandArea   *Number `json:"totalLandArea"`
	GardenArea      *Number `json:"gardenArea"`
	GarageArea      *Number `json:"garageArea"`
	BalconyArea     *Number `json:"balconyArea"`
	PergolaArea     *Number `json:"pergolaArea"`
	BasementArea    *Number `json:"basementArea"`
	WorkshopArea    *Number `json:"workshopArea"`
	TotalObjectArea *Number `json:"totalObjectArea"`
	UsableArea      *Number `json:"usableArea"`
	LandArea        *Number `json:"landArea"`

	ObjectType              *string `json:"objectType"`
	ObjectLocationType      *string `json:"objectLocationType"`
	HouseEquipment          *string `json:"houseEquipment"`
	AccessRoad              *string `json:"accessRoad"`
	ObjectCondition         *string `json:"objectCondition"`
	EquipmentDescription    *string `json:"equipmentDescription"`
	AdditionalSources       *string `json:"additionalSources"`
	BuildingPermit          *string `json:"buildingPermit"`
	Buildability            *string `json:"buildability"`
	UtilitiesOnLand         *string `json:"utilitiesOnLand"`
	UtilitiesOnAdjacentRoad *string `json:"utilitiesOnAdjacentRoad"`
	Payments                *string `json:"payments"`

	BrokerID       *string `json:"brokerId"`
	SecondaryAgent *string `json:"secondaryAgent"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Images       []PropertyImage       `json:"images"`
	Floorplans   []PropertyFloorplan   `json:"floorplans"`
	Reviews      []Review              `json:"reviews"`
	Translations []PropertyTranslation `json:"translations"`
}

type Review struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	PropertyID  *int   `json:"propertyId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Blog struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Content         string            `json:"content"`
	Slug            string            `json:"slug"`
	Pictures        []string          `json:"pictures"`
	Tags            []string          `json:"tags"`
	Date            string            `json:"date"`
	MetaTitle       *string           `json:"metaTitle"`
	MetaDescription *string           `json:"metaDescription"`
	Keywords        *string           `json:"keywords"`
	Language        string            `json:"language"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
	Translations    []BlogTranslation `json:"translations"`
}

type BlogTranslation struct {
	ID              int      `json:"id"`
	BlogID          int      `json:"blogId"`
	Language        string   `json:"language"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	Keywords        *string  `json:"keywords"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// BlogLanguages lists which content languages exist for a blog post.
type BlogLanguages struct {
	BlogID              int      `json:"blogId"`
	BlogName            string   `json:"blogName"`
	Languages           []string `json:"languages"`
	OriginalLanguage    string   `json:"originalLanguage"`
	TranslatedLanguages []string `json:"translatedLanguages"`
}

type ContactFormSubmission struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	PhoneNumber *string `json:"phoneNumber"`
	CreatedAt   string  `json:"createdAt"`
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}

type PropertyStats struct {
	ActiveProperties  int `json:"activeProperties"`
	SoldProperties    int `json:"soldProperties"`
	YearsOfExperience int `json:"yearsOfExperience"`
}

type CategoryStats struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ActiveCount  int    `json:"activeCount"`
}
