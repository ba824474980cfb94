package compile

import (
	"github.com/samber/lo"

	"beanmap/internal/model"
)

// SelectKind picks the access strategy for a field pair. The first rule that
// applies wins:
//   - map-keyed when either field or either owning class uses map accessors,
//   - custom accessor when either field names a get or set method,
//   - generic otherwise.
//
// Excludes never go through selection.
func SelectKind(src, dest model.FieldDescriptor, srcClass, destClass model.ClassDescriptor) model.FieldMapKind {
	switch {
	case src.IsMapAccessed() || dest.IsMapAccessed() ||
		srcClass.IsMapAccessed() || destClass.IsMapAccessed():
		return model.KindMapKeyed
	case src.HasCustomAccessor() || dest.HasCustomAccessor():
		return model.KindCustomAccessor
	default:
		return model.KindGeneric
	}
}

// buildStrategy produces the payload for kind.
func buildStrategy(
	kind model.FieldMapKind,
	src, dest model.FieldDescriptor,
	srcClass, destClass model.ClassDescriptor,
) model.Strategy {
	switch kind {
	case model.KindMapKeyed:
		return model.MapKeyed{
			SrcKey:           src.Key,
			DestKey:          dest.Key,
			SrcMapGetMethod:  lo.CoalesceOrEmpty(src.MapGetMethod, srcClass.MapGetMethod),
			SrcMapSetMethod:  lo.CoalesceOrEmpty(src.MapSetMethod, srcClass.MapSetMethod),
			DestMapGetMethod: lo.CoalesceOrEmpty(dest.MapGetMethod, destClass.MapGetMethod),
			DestMapSetMethod: lo.CoalesceOrEmpty(dest.MapSetMethod, destClass.MapSetMethod),
			SrcClassMapped:   srcClass.IsMapAccessed(),
			DestClassMapped:  destClass.IsMapAccessed(),
		}
	case model.KindCustomAccessor:
		return model.CustomAccessor{
			SrcGetMethod:  src.GetMethod,
			SrcSetMethod:  src.SetMethod,
			DestGetMethod: dest.GetMethod,
			DestSetMethod: dest.SetMethod,
		}
	case model.KindExclude:
		return model.Exclude{}
	default:
		return model.Generic{}
	}
}
