// Package descriptor models the names and descriptors used by JVM class
// files and converts them to and from their canonical text.
//
// Three value types cover the grammar:
//
//	ClassName  java/util/Map$Entry
//	Type       I, [J, Ljava/lang/String;
//	Method     put(Ljava/lang/Object;Ljava/lang/Object;)Ljava/lang/Object;
//
// Every value formats with String or WriteTo and parses back with the
// matching Parse function. Parsing consumes the whole input and reports
// failures as Errors.
//
// Values are never mutated after construction and may be shared freely
// between goroutines.
package descriptor
