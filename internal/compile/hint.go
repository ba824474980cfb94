package compile

import (
	"beanmap/internal/model"
	"beanmap/internal/spec"
)

// compileHints wraps the four hint slots of a field pair. Nothing is loaded
// here; blank slots stay nil.
func compileHints(pair *spec.FieldPair) model.Hints {
	return model.Hints{
		Src:           model.NewHintContainer(pair.SrcHint),
		Dest:          model.NewHintContainer(pair.DestHint),
		SrcDeepIndex:  model.NewHintContainer(pair.SrcDeepIndexHint),
		DestDeepIndex: model.NewHintContainer(pair.DestDeepIndexHint),
	}
}

// compileConverterRef returns nil when the pair names no converter.
func compileConverterRef(pair *spec.FieldPair) *model.ConverterRef {
	if pair.CustomConverter == "" && pair.CustomConverterID == "" && pair.CustomConverterParam == "" {
		return nil
	}

	return &model.ConverterRef{
		ID:       pair.CustomConverterID,
		TypeName: pair.CustomConverter,
		Param:    pair.CustomConverterParam,
	}
}
