package dom

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ParseFixture builds an element tree from a JSON fixture.
// The expected shape is:
//
//	{
//	  "tag": "div",
//	  "attrs": {"id": "root"},
//	  "classes": ["container"],
//	  "styles": {"display": "block"},
//	  "text": "Hello",
//	  "children": [ ... ]
//	}
//
// Only "tag" is required. Style properties keep the order they
// appear in the document.
func ParseFixture(data []byte) (*Element, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("fixture is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	return parseNode(root, "")
}

// LoadFixture reads a JSON fixture file and builds its element
// tree.
func LoadFixture(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read fixture %s: %w", path, err,
		)
	}
	return ParseFixture(data)
}

func parseNode(node gjson.Result, path string) (*Element, error) {
	tag := node.Get("tag").String()
	if tag == "" {
		return nil, fmt.Errorf(
			"fixture node %q is missing a tag", nodePath(path),
		)
	}

	el := NewElement(tag)

	node.Get("attrs").ForEach(func(k, v gjson.Result) bool {
		el.WithAttr(k.String(), v.String())
		return true
	})

	node.Get("classes").ForEach(func(_, v gjson.Result) bool {
		el.WithClass(v.String())
		return true
	})

	node.Get("styles").ForEach(func(k, v gjson.Result) bool {
		el.WithStyle(k.String(), v.String())
		return true
	})

	if text := node.Get("text"); text.Exists() {
		el.WithText(text.String())
	}

	var parseErr error
	node.Get("children").ForEach(func(i, child gjson.Result) bool {
		childPath := fmt.Sprintf("%s.children[%d]", nodePath(path), i.Int())
		c, err := parseNode(child, childPath)
		if err != nil {
			parseErr = err
			return false
		}
		el.Append(c)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return el, nil
}

func nodePath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
