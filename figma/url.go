package figma

import (
	"fmt"
	"net/url"
	"strings"
)

// FileKeyFromArg extracts a file key from a command line argument. The
// argument is either the key itself or a link copied from the Figma UI, for
// example https://www.figma.com/design/KEY/Title?node-id=1-2.
func FileKeyFromArg(arg string) (string, error) {
	if !strings.Contains(arg, "figma.com") {
		return arg, nil
	}

	u, err := url.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("unable to parse file link: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if (p == "file" || p == "design") && i+1 < len(parts) && len(parts[i+1]) > 0 {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("unable to find file key in link %s", arg)
}
