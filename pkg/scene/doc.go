// Package scene decodes declarative drawing descriptions into SVG documents.
//
// A scene is a TOML, JSON or YAML file describing one <svg> document. Attributes
// are ordered lists of [name, value] pairs, because attribute order is
// preserved in the output, and path data is an ordered list of
// [letter, operands...] commands where the letter case selects absolute or
// relative coordinates:
//
//	width = 70
//	height = 70
//	view_box = [0, 0, 70, 70]
//
//	[[children]]
//	name = "path"
//	attrs = [["fill", "none"], ["stroke", "black"], ["stroke-width", 3]]
//	d = [["M", 10, 10], ["l", 0, 50], ["l", 50, 0], ["l", 0, -50], ["z"]]
//
//	[[children]]
//	name = "text"
//	attrs = [["x", 35], ["y", 35]]
//	text = "square"
//
// The JSON and YAML forms use the same keys. [Decode] parses a scene and
// [Scene.Build] turns it into a [svg.Document]; [Load] does both steps for a
// file on disk, picking the format from the file extension.
//
// # Errors
//
// Decoding failures carry INVALID_SCENE. Building preserves the code of the
// underlying failure (INVALID_ARITY for a path command with the wrong
// operand count, INVALID_VALUE for an unconvertible attribute, INVALID_NAME
// for a malformed tag or attribute name) and prefixes the message with the
// location inside the scene, e.g. "children[0]: d[2]: ...".
package scene
