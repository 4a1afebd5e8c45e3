// SPDX-License-Identifier: Apache-2.0

package amf3

// objectTraits is the decode-side traits record: a class descriptor
// registered by position in the traits table. Unlike Object,
// it is never exposed to callers — it exists only to let a second OBJECT
// occurrence reference a previously-defined traits shape.
type objectTraits struct {
	class          string
	dynamic        bool
	externalizable bool
	staticNames    []string
}

// decodeObject resolves-or-defines the traits
// record, then reads the static member values, the externalizable opaque
// payload, or the dynamic key/value tail according to what the traits say
// this object carries.
func (ctx *decodeCtx) decodeObject(depth int) (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}

	inner := u29 >> 1
	var tr *objectTraits
	if inner&1 == 0 {
		idx := int(inner >> 1)
		rec, ok := ctx.traits.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		tr, ok = rec.(*objectTraits)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
	} else {
		descriptor := inner >> 1
		ext := descriptor&1 != 0
		dyn := descriptor&2 != 0
		n := int(descriptor >> 2)

		className, err := ctx.readStringPayload()
		if err != nil {
			return nil, err
		}
		staticNames := make([]string, n)
		for i := 0; i < n; i++ {
			name, err := ctx.readStringPayload()
			if err != nil {
				return nil, err
			}
			staticNames[i] = name
		}
		tr = &objectTraits{class: className, dynamic: dyn, externalizable: ext, staticNames: staticNames}
		ctx.traits.Register(tr)
	}

	obj := &Object{
		Class:          tr.class,
		Dynamic:        tr.dynamic,
		Externalizable: tr.externalizable,
		StaticNames:    append([]string(nil), tr.staticNames...),
	}
	ctx.values.Register(obj)

	if tr.externalizable {
		val, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.Data = val
		obj.HasData = true
		return obj, nil
	}

	obj.StaticValues = make([]any, len(tr.staticNames))
	for i := range tr.staticNames {
		v, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.StaticValues[i] = v
	}

	if tr.dynamic {
		obj.DynFields = map[string]any{}
		for {
			key, err := ctx.readStringPayload()
			if err != nil {
				return nil, err
			}
			if key == "" {
				break
			}
			v, err := ctx.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			obj.DynKeys = append(obj.DynKeys, key)
			obj.DynFields[key] = v
		}
	}

	return obj, nil
}
