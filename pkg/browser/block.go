package browser

import "github.com/playwright-community/playwright-go"

// Resource types as reported by playwright's Request.ResourceType.
const (
	ResourceDocument    = "document"
	ResourceStylesheet  = "stylesheet"
	ResourceImage       = "image"
	ResourceMedia       = "media"
	ResourceFont        = "font"
	ResourceScript      = "script"
	ResourceTextTrack   = "texttrack"
	ResourceXHR         = "xhr"
	ResourceFetch       = "fetch"
	ResourceEventSource = "eventsource"
	ResourceWebSocket   = "websocket"
	ResourceManifest    = "manifest"
	ResourceOther       = "other"
)

// LightBlockPreset blocks the heavyweight page furniture while leaving
// scripts and data requests alone.
var LightBlockPreset = []string{
	ResourceDocument,
	ResourceStylesheet,
	ResourceImage,
	ResourceMedia,
	ResourceFont,
	ResourceTextTrack,
}

// BlockResources routes all requests on the page and aborts those whose
// resource type is in types; everything else continues untouched. With no
// types given, LightBlockPreset applies.
func BlockResources(page playwright.Page, types ...string) error {
	blocked := resourceSet(types)

	return page.Route("**/*", func(route playwright.Route) {
		if _, ok := blocked[route.Request().ResourceType()]; ok {
			route.Abort()
			return
		}
		route.Continue()
	})
}

func resourceSet(types []string) map[string]struct{} {
	if len(types) == 0 {
		types = LightBlockPreset
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}
