package style

import (
	"fmt"
	"strings"

	"retrobooth/internal/domain"
)

var eraDescriptors = map[domain.Era]string{
	domain.Era1950s: "a 1950s studio portrait: muted Kodachrome tones, tailored mid-century fashion, soft tungsten lighting, slicked or pin-curled hair",
	domain.Era1960s: "a 1960s snapshot: saturated colors, mod fashion, bold geometric prints, bright daylight film look",
	domain.Era1970s: "a 1970s photograph: warm faded film stock, earth tones, feathered hair, wide collars, slight vignette",
	domain.Era1980s: "a 1980s mall portrait: vivid neon palette, airbrushed laser background, big permed hair, shoulder pads, direct flash",
	domain.Era1990s: "a 1990s candid: grunge-era styling, slightly washed-out 35mm colors, denim and flannel, casual framing",
	domain.Era2000s: "an early 2000s digicam photo: harsh on-camera flash, frosted tips or chunky highlights, y2k fashion, mild oversharpening",
}

// BuildEraPrompt renders the natural-language style descriptor handed to the
// generation collaborator for one era. The subject's identity and pose must be
// preserved; only styling, wardrobe and film character change.
func BuildEraPrompt(era domain.Era) string {
	descriptor, ok := eraDescriptors[era]
	if !ok {
		descriptor = fmt.Sprintf("a photograph taken in the %s", era)
	}

	var b strings.Builder
	b.WriteString("Restyle this photo so it looks like ")
	b.WriteString(descriptor)
	b.WriteString(". Keep the same person, face, expression and pose. ")
	b.WriteString("Change only clothing, hair, background and photographic character to match the ")
	b.WriteString(era.String())
	b.WriteString(". Return a single photorealistic image.")
	return b.String()
}
