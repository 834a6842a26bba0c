// Package tsplib reads travelling salesman instances stored in the TSPLIB
// NODE_COORD_SECTION layout and prints their header fields.
//
// Only the fixed layout below is understood:
//
//	NAME <name>
//	TYPE <type>
//	COMMENT <word>
//	DIMENSION <n>
//	EDGE_WEIGHT_TYPE <code>
//	NODE_COORD_SECTION
//	<index> <x> <y>        (n lines)
//
// Load and Read return an *Instance or one of *FormatError, *TypeError and
// *TruncationError. Write and Save produce the same layout, and
// MarshalDocument turns an instance into the JSON used by the converter.
package tsplib
