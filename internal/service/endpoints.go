package service

import "fmt"

// Endpoint path builders, one per entity and operation. Property and blog
// content is localized, so their paths take the routing locale as the
// leading segment. Translation and language-listing paths take a content
// language instead, which is deliberately a separate parameter.

func propertiesPath(locale string) string {
	return fmt.Sprintf("/%s/properties", locale)
}

func propertyPath(locale string, id int) string {
	return fmt.Sprintf("/%s/properties/%d", locale, id)
}

func propertyStatePath(locale string, id int) string {
	return fmt.Sprintf("/%s/properties/%d/state", locale, id)
}

func propertyStatsPath() string {
	return "/properties/stats"
}

func propertyCategoryStatsPath() string {
	return "/properties/category-stats"
}

func propertyVideoToursPath() string {
	return "/properties/video-tours"
}

func propertyExternalPath() string {
	return "/properties/external"
}

func propertySyncPath(id int) string {
	return fmt.Sprintf("/properties/%d/sync", id)
}

func propertyTranslatePath(id int) string {
	return fmt.Sprintf("/properties/%d/translate", id)
}

func blogsPath(locale string) string {
	return fmt.Sprintf("/%s/blogs", locale)
}

func blogPath(locale, slug string) string {
	return fmt.Sprintf("/%s/blogs/%s", locale, slug)
}

func blogByIDPath(locale string, id int) string {
	return fmt.Sprintf("/%s/blogs/%d", locale, id)
}

func blogTranslatePath(locale string, id int) string {
	return fmt.Sprintf("/%s/blogs/%d/translate", locale, id)
}

// blogLanguagesPath takes the viewing language, not the routing locale.
func blogLanguagesPath(language string, id int) string {
	return fmt.Sprintf("/%s/blogs/%d/languages", language, id)
}

func reviewsPath() string {
	return "/reviews"
}

func reviewPath(id int) string {
	return fmt.Sprintf("/reviews/%d", id)
}

func contactFormPath() string {
	return "/contactform"
}

func uploadImagePath() string  { return "/upload/image" }
func uploadImagesPath() string { return "/upload/images" }
func uploadFilePath() string   { return "/upload/file" }
func uploadFilesPath() string  { return "/upload/files" }

func healthPath() string {
	return "/health"
}
