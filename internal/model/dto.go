package model

// Input payloads validated at the service boundary before any request goes
// out. Tags follow the go-playground/validator syntax.

// PropertyFilter narrows a property list call. Zero values mean "no filter";
// page and limit fall back to the server defaults when 0.
type PropertyFilter struct {
	Page       int            `validate:"gte=0"`
	Limit      int            `validate:"gte=0,lte=100"`
	Search     string         `validate:"omitempty,max=200"`
	Status     PropertyStatus `validate:"omitempty,oneof=ACTIVE SOLD RENT"`
	CategoryID int            `validate:"gte=0"`
}

// CreatePropertyInput is the JSON payload for the external-create endpoint.
// The regular create flow uses a multipart form instead (images included).
type CreatePropertyInput struct {
	Name          string         `json:"name" validate:"required"`
	CategoryID    int            `json:"categoryId" validate:"required,gt=0"`
	Status        PropertyStatus `json:"status" validate:"required,oneof=ACTIVE SOLD RENT"`
	OwnershipType OwnershipType  `json:"ownershipType" validate:"required,oneof=RENT OWNERSHIP"`
	Description   string         `json:"description" validate:"required"`
	City          string         `json:"city" validate:"required"`
	Street        string         `json:"street" validate:"required"`
	Country       string         `json:"country" validate:"required"`
	Size          float64        `json:"size" validate:"gte=0"`
	Beds          int            `json:"beds" validate:"gte=0"`
	Baths         int            `json:"baths" validate:"gte=0"`
	Price         float64        `json:"price" validate:"gte=0"`
	VirtualTour   string         `json:"virtualTour,omitempty"`
	VideoURL      string         `json:"videoUrl,omitempty"`
}

// UpdatePropertyInput is a partial update; nil fields are left untouched
// server-side.
type UpdatePropertyInput struct {
	Name            *string         `json:"name,omitempty"`
	CategoryID      *int            `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Status          *PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE SOLD RENT"`
	Description     *string         `json:"description,omitempty"`
	City            *string         `json:"city,omitempty"`
	Street          *string         `json:"street,omitempty"`
	Country         *string         `json:"country,omitempty"`
	Size            *float64        `json:"size,omitempty" validate:"omitempty,gte=0"`
	Beds            *int            `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Baths           *int            `json:"baths,omitempty" validate:"omitempty,gte=0"`
	Price           *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	DiscountedPrice *float64        `json:"discountedPrice,omitempty" validate:"omitempty,gte=0"`
	PriceHidden     *bool           `json:"priceHidden,omitempty"`
	VirtualTour     *string         `json:"virtualTour,omitempty"`
	VideoURL        *string         `json:"videoUrl,omitempty"`
	Layout          *string         `json:"layout,omitempty"`
}

type CreateBlogInput struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Content         string   `json:"content" validate:"required"`
	Tags            []string `json:"tags,omitempty"`
	MetaTitle       string   `json:"metaTitle,omitempty" validate:"omitempty,max=200"`
	MetaDescription string   `json:"metaDescription,omitempty" validate:"omitempty,max=500"`
}

type UpdateBlogInput struct {
	Name            *string  `json:"name,omitempty"`
	Content         *string  `json:"content,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MetaTitle       *string  `json:"metaTitle,omitempty" validate:"omitempty,max=200"`
	MetaDescription *string  `json:"metaDescription,omitempty" validate:"omitempty,max=500"`
	Keywords        *string  `json:"keywords,omitempty"`
}

type CreateReviewInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	PropertyID  int    `json:"propertyId,omitempty" validate:"gte=0"`
}

type ContactFormInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// TranslationInput names the content language to translate into. The source
// language is optional; the server falls back to the original language.
type TranslationInput struct {
	TargetLanguage string `json:"targetLanguage" validate:"required,bcp47_language_tag"`
	SourceLanguage string `json:"sourceLanguage,omitempty" validate:"omitempty,bcp47_language_tag"`
}
