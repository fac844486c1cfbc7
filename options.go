package gyazo

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// AccessPolicy controls who can view an uploaded image.
type AccessPolicy string

const (
	// AccessPolicyAnyone makes the image visible to anyone with the link.
	// This is the server-side default when no policy is sent.
	AccessPolicyAnyone AccessPolicy = "anyone"

	// AccessPolicyOnlyMe makes the image visible only to the uploader.
	AccessPolicyOnlyMe AccessPolicy = "only_me"
)

// UploadOptions holds the optional parameters of an upload. Every field is
// independently optional; zero-valued fields are omitted from the request
// entirely.
type UploadOptions struct {
	// AccessPolicy sets the visibility of the uploaded image.
	AccessPolicy AccessPolicy

	// MetadataIsPublic controls whether metadata such as the source URL
	// and title is public.
	MetadataIsPublic *bool

	// RefererURL is the URL of the website captured in the image.
	RefererURL string

	// App is the name of the application that captured the image.
	App string

	// Title is the title of the website captured in the image.
	Title string

	// Desc is a comment or description for the uploaded image.
	Desc string

	// CreatedAt is the creation time of the image in Unix seconds.
	CreatedAt *float64

	// CollectionID adds the image to a collection owned by or shared
	// with the uploader.
	CollectionID string
}

type formField struct {
	name  string
	value string
}

// formFields returns the populated options as text form fields in a fixed
// order. A nil receiver yields no fields.
func (o *UploadOptions) formFields() []formField {
	if o == nil {
		return nil
	}

	var fields []formField
	if o.AccessPolicy != "" {
		fields = append(fields, formField{"access_policy", string(o.AccessPolicy)})
	}
	if o.MetadataIsPublic != nil {
		fields = append(fields, formField{"metadata_is_public", strconv.FormatBool(*o.MetadataIsPublic)})
	}
	if o.RefererURL != "" {
		fields = append(fields, formField{"referer_url", o.RefererURL})
	}
	if o.App != "" {
		fields = append(fields, formField{"app", o.App})
	}
	if o.Title != "" {
		fields = append(fields, formField{"title", o.Title})
	}
	if o.Desc != "" {
		fields = append(fields, formField{"desc", o.Desc})
	}
	if o.CreatedAt != nil {
		// Decimal rendering keeps large or fractional timestamps out of
		// exponent notation.
		fields = append(fields, formField{"created_at", decimal.NewFromFloat(*o.CreatedAt).String()})
	}
	if o.CollectionID != "" {
		fields = append(fields, formField{"collection_id", o.CollectionID})
	}
	return fields
}
