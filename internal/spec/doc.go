// Package spec defines the mapping specification tree consumed by the
// compiler, and a fluent Builder for authoring it in Go.
//
// The tree is plain data: nodes hold no references to their parents, and the
// compiler never mutates it. Builder nodes keep a parent pointer only so that
// End can return to the enclosing scope:
//
//	set := spec.NewBuilder().
//		Mapping().
//			ClassA("com.acme.Foo").End().
//			ClassB("com.acme.Bar").End().
//			Fields("name", "fullName").End().
//			Exclude("secret", "secret").End().
//		End().
//		Build()
package spec
