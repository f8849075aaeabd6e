package service

import "github.com/bogaczig73/realitypuchyr-admin/internal/model"

// The response transforms mirror what the admin UI applies to every
// property/blog payload: absent collections become empty slices so callers
// can range without nil checks. Numeric-looking string fields (price,
// areas) are coerced during decode by model.Number.

func transformProperty(p *model.Property) *model.Property {
	if p.Images == nil {
		p.Images = []model.PropertyImage{}
	}
	if p.Floorplans == nil {
		p.Floorplans = []model.PropertyFloorplan{}
	}
	if p.Reviews == nil {
		p.Reviews = []model.Review{}
	}
	if p.Translations == nil {
		p.Translations = []model.PropertyTranslation{}
	}
	return p
}

func transformProperties(properties []model.Property) []model.Property {
	for i := range properties {
		transformProperty(&properties[i])
	}
	return properties
}

func transformBlog(b *model.Blog) *model.Blog {
	if b.Pictures == nil {
		b.Pictures = []string{}
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Translations == nil {
		b.Translations = []model.BlogTranslation{}
	}
	return b
}

func transformBlogs(blogs []model.Blog) []model.Blog {
	for i := range blogs {
		transformBlog(&blogs[i])
	}
	return blogs
}
