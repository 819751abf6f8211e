package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// envMap evaluates an env attribute expression into a string map. HCL
// object values written as numbers or booleans convert to their string
// form; anything that cannot become a string (lists, nested objects) is
// a configuration error.
func envMap(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("env must be an object of key = value pairs, got %s", val.Type().FriendlyName())
	}

	env := make(map[string]string)
	for key, v := range val.AsValueMap() {
		str, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("value for %s: %w", key, err)
		}
		if str.IsNull() {
			return nil, fmt.Errorf("value for %s is null", key)
		}
		env[key] = str.AsString()
	}
	return env, nil
}
