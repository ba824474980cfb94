// Package specfile reads and writes mapping specifications as YAML or TOML
// documents and converts them to and from the spec tree.
//
// A minimal YAML document:
//
//	configuration:
//	  stop-on-errors: false
//	  allowed-exceptions: [java.lang.IllegalStateException]
//	mappings:
//	  - class-a: com.acme.Foo
//	    class-b: com.acme.Bar
//	    fields:
//	      - a: name
//	        b: fullName
//	      - a: secret
//	        b: secret
//	        exclude: true
//
// In YAML a class or field reference may be a bare name or a table of
// attributes. TOML documents always use tables.
package specfile
