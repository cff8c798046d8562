package sdmx

// Identity identifies an artefact
type Identity struct {
	ID  string `json:"id"`
	URN string `json:"urn,omitempty"`
	URI string `json:"uri,omitempty"`
}

// Naming holds the default and localised names and descriptions of an artefact
type Naming struct {
	Name         string            `json:"name,omitempty"`
	Names        map[string]string `json:"names,omitempty"`
	Description  string            `json:"description,omitempty"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
}

// LocalName returns the name for locale, or the default name when the locale is empty
// or not translated
func (n Naming) LocalName(locale string) string {
	if locale != "" {
		if name, ok := n.Names[locale]; ok {
			return name
		}
	}
	return n.Name
}

// LocalDescription returns the description for locale with the same fallback as LocalName
func (n Naming) LocalDescription(locale string) string {
	if locale != "" {
		if d, ok := n.Descriptions[locale]; ok {
			return d
		}
	}
	return n.Description
}

// Versioning holds the version and validity of a versionable artefact
type Versioning struct {
	Version   string `json:"version,omitempty"`
	ValidFrom string `json:"validFrom,omitempty"`
	ValidTo   string `json:"validTo,omitempty"`
}

// Maintenance holds the ownership details of a maintainable artefact
type Maintenance struct {
	AgencyID            string `json:"agencyID,omitempty"`
	IsFinal             bool   `json:"isFinal,omitempty"`
	IsExternalReference bool   `json:"isExternalReference,omitempty"`
}

// Artefact is a generic SDMX artefact. Each capability block is nil when the
// artefact does not carry any of its fields.
type Artefact struct {
	*Identity
	*Naming
	*Versioning
	*Maintenance
	Links       []*Link       `json:"links,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
}

// Link is a hyperlink attached to a message, structure or dataset
type Link struct {
	HRef     string            `json:"href,omitempty"`
	Rel      string            `json:"rel,omitempty"`
	HRefLang string            `json:"hreflang,omitempty"`
	Title    string            `json:"title,omitempty"`
	Titles   map[string]string `json:"titles,omitempty"`
	Type     string            `json:"type,omitempty"`
	URN      string            `json:"urn,omitempty"`
	URI      string            `json:"uri,omitempty"`
}

// Annotation is a structure annotation. Datasets and series refer to them by index.
type Annotation struct {
	ID    string            `json:"id,omitempty"`
	Title string            `json:"title,omitempty"`
	Type  string            `json:"type,omitempty"`
	Text  string            `json:"text,omitempty"`
	Texts map[string]string `json:"texts,omitempty"`
	Links []*Link           `json:"links,omitempty"`
}
