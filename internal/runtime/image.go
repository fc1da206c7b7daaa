package runtime

import (
	"fmt"
	"net/url"
)

// PlaceholderURL derives a stable stand-in image for seed.
// Equal seeds always map to the same URL and distinct seeds never collide.
func PlaceholderURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/600/400?grayscale&blur=2", url.PathEscape(seed))
}
