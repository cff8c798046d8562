package url

import (
	"fmt"
	"strings"
)

// Builder encapsulates the building of urls in a central place, with knowledge of the url structures and base host names.
type Builder struct {
	sdmxAPIURL string
}

// NewBuilder returns a new instance of url.Builder
func NewBuilder(sdmxAPIURL string) *Builder {
	return &Builder{
		sdmxAPIURL: strings.TrimSuffix(sdmxAPIURL, "/"),
	}
}

func (builder *Builder) GetSdmxAPIURL() string {
	return builder.sdmxAPIURL
}

// BuildMessagesURL returns the URL of the message collection
func (builder Builder) BuildMessagesURL() string {
	return fmt.Sprintf("%s/messages", builder.sdmxAPIURL)
}

// BuildMessageURL returns the URL of a stored message
func (builder Builder) BuildMessageURL(messageID string) string {
	return fmt.Sprintf("%s/messages/%s", builder.sdmxAPIURL, messageID)
}

// BuildMessageProjectionURL returns the URL of a message projection such as observations or dimensions
func (builder Builder) BuildMessageProjectionURL(messageID, projection string) string {
	return fmt.Sprintf("%s/messages/%s/%s", builder.sdmxAPIURL, messageID, projection)
}

// BuildDataSetObservationsURL returns the download URL of the observations of one dataset of a message
func (builder Builder) BuildDataSetObservationsURL(messageID string, index int, format string) string {
	u := fmt.Sprintf("%s/messages/%s/datasets/%d/observations", builder.sdmxAPIURL, messageID, index)
	if format != "" {
		u += "?format=" + format
	}
	return u
}
