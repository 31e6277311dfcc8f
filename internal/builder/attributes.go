package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
	"reqif-exporter/internal/textformat"
)

// attributes returns the values of e in fixed order: the configured roles, then the
// parameter values routed through the external identifier map.
func (c conversion) attributes(e entity, owner reqif.SpecType, roles *settings.AttributeDefinitions) ([]reqif.AttributeValue, error) {
	var values []reqif.AttributeValue

	for _, role := range roles.Roles() {
		if role.ID == "" {
			continue
		}

		if role.Role == settings.RoleDeleted && e.deleted == nil {
			continue
		}

		if role.Role == settings.RoleName && e.thing.Name == "" {
			continue
		}

		def, ok := reqif.FindAttributeDefinition(owner, role.ID)
		if !ok {
			c.logger.Warn("attribute definition not found in template, field skipped",
				"role", string(role.Role),
				"identifier", role.ID,
				"specType", owner.Ident().LongName,
				"entity", e.thing.Label())

			continue
		}

		v, ok := c.roleValue(role.Role, def, e)
		if !ok {
			c.logger.Warn("attribute definition cannot hold the role, field skipped",
				"role", string(role.Role),
				"identifier", role.ID,
				"kind", def.Kind().String(),
				"entity", e.thing.Label())

			continue
		}

		values = append(values, v)
	}

	for _, pv := range e.values {
		if pv.ParameterType == nil {
			continue
		}

		for _, externalID := range c.settings.ExternalIdentifierMap.Lookup(pv.ParameterType.Thing().ID) {
			def, ok := reqif.FindAttributeDefinition(owner, externalID)
			if !ok {
				continue
			}

			v, err := c.coerce(pv, def)
			if err != nil {
				return nil, err
			}

			if v != nil {
				values = append(values, v)
			}
		}
	}

	return values, nil
}

func (c conversion) roleValue(role settings.Role, def reqif.AttributeDefinition, e entity) (reqif.AttributeValue, bool) {
	switch role {
	case settings.RoleText:
		return c.textValue(def, e.text)
	case settings.RoleName:
		return c.textValue(def, e.thing.Name)
	case settings.RoleModifiedOn:
		if d, ok := def.(*reqif.AttributeDefinitionDate); ok {
			return &reqif.AttributeValueDate{Definition: d, TheValue: e.modifiedOn}, true
		}
	case settings.RoleDeleted:
		if d, ok := def.(*reqif.AttributeDefinitionBoolean); ok {
			deleted := false
			for _, flag := range e.deleted {
				deleted = deleted || flag
			}

			return &reqif.AttributeValueBoolean{Definition: d, TheValue: deleted}, true
		}
	}

	return nil, false
}

// textValue writes s to an XHTML definition formatted per the settings, or to a
// string definition as plain text.
func (c conversion) textValue(def reqif.AttributeDefinition, s string) (reqif.AttributeValue, bool) {
	switch d := def.(type) {
	case *reqif.AttributeDefinitionXHTML:
		return &reqif.AttributeValueXHTML{Definition: d, TheValue: textformat.Format(s, c.settings.AddXhtmlTags)}, true
	case *reqif.AttributeDefinitionString:
		return &reqif.AttributeValueString{Definition: d, TheValue: textformat.StripTags(s)}, true
	default:
		return nil, false
	}
}

// coerce converts the first element of a parameter value into a value of def.
// A nil value without error means the field is dropped.
func (c conversion) coerce(pv model.ParameterValue, def reqif.AttributeDefinition) (reqif.AttributeValue, error) {
	raw, ok := pv.First()
	if !ok || isUnset(raw) {
		return nil, nil
	}

	pt := pv.ParameterType

	// Any scalar can be shown as text.
	if v, ok := c.textValue(def, raw); ok {
		return v, nil
	}

	switch t := pt.(type) {
	case *model.BooleanParameterType:
		d, err := definitionAs[*reqif.AttributeDefinitionBoolean](pt, def)
		if err != nil {
			return nil, err
		}

		b, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s value %q: %w", ErrMalformedValue, t.Name, raw, err)
		}

		return &reqif.AttributeValueBoolean{Definition: d, TheValue: b}, nil
	case *model.DateParameterType, *model.DateTimeParameterType:
		d, err := definitionAs[*reqif.AttributeDefinitionDate](pt, def)
		if err != nil {
			return nil, err
		}

		ts, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s value %q: %w", ErrMalformedValue, pt.Thing().Name, raw, err)
		}

		return &reqif.AttributeValueDate{Definition: d, TheValue: ts}, nil
	case *model.EnumerationParameterType:
		d, err := definitionAs[*reqif.AttributeDefinitionEnumeration](pt, def)
		if err != nil {
			return nil, err
		}

		return enumerationValue(d, t, raw), nil
	case *model.QuantityKind:
		return quantityValue(t, def, raw)
	case *model.TextParameterType:
		return nil, fmt.Errorf("%w: %s cannot hold text of %s", ErrIncompatibleValue, def.Kind(), t.Name)
	default:
		return nil, fmt.Errorf("%w: parameter type %s", ErrNotSupported, pt.Kind())
	}
}

func definitionAs[D reqif.AttributeDefinition](pt model.ParameterType, def reqif.AttributeDefinition) (D, error) {
	d, ok := def.(D)
	if !ok {
		return d, fmt.Errorf("%w: %s %s cannot be written to %s attribute definition %s",
			ErrIncompatibleValue, pt.Kind(), pt.Thing().Name, def.Kind(), def.Ident().Identifier)
	}

	return d, nil
}

// enumerationValue matches literal names against the destination datatype.
// Multi-select values list their literals separated by "|". Unknown literals are
// dropped; when none is left the whole value is dropped.
func enumerationValue(def *reqif.AttributeDefinitionEnumeration, pt *model.EnumerationParameterType, raw string) reqif.AttributeValue {
	if def.Type == nil {
		return nil
	}

	names := []string{raw}
	if pt.AllowMultiSelect {
		names = strings.Split(raw, "|")
	}

	out := &reqif.AttributeValueEnumeration{Definition: def}

	for _, name := range names {
		if v, ok := def.Type.EnumValueByName(strings.TrimSpace(name)); ok {
			out.Values = append(out.Values, v)
		}
	}

	if len(out.Values) == 0 {
		return nil
	}

	if !def.MultiValued {
		out.Values = out.Values[:1]
	}

	return out
}

func quantityValue(pt *model.QuantityKind, def reqif.AttributeDefinition, raw string) (reqif.AttributeValue, error) {
	s := strings.TrimSpace(raw)

	switch d := def.(type) {
	case *reqif.AttributeDefinitionInteger:
		n, err := parseInteger(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s value %q: %w", ErrMalformedValue, pt.Name, raw, err)
		}

		return &reqif.AttributeValueInteger{Definition: d, TheValue: n}, nil
	case *reqif.AttributeDefinitionReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s value %q: %w", ErrMalformedValue, pt.Name, raw, err)
		}

		return &reqif.AttributeValueReal{Definition: d, TheValue: f}, nil
	default:
		return nil, fmt.Errorf("%w: quantity kind %s cannot be written to %s attribute definition %s",
			ErrIncompatibleValue, pt.Name, def.Kind(), def.Ident().Identifier)
	}
}

// isUnset reports the placeholders the source uses for "no value".
func isUnset(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == "-"
}

func parseBool(raw string) (bool, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)

	var firstErr error

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

// parseInteger also accepts integral floats such as "3.0" or "1e3".
func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}

	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, err
	}

	return int64(f), nil
}
