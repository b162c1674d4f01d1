/*

Package encode is the serialization collaborator for rendering HTTP
responses: it turns arbitrary values into JSON text and escapes the
characters that matter when that text lands in a script context.

Values wanting control over their own serialized shape implement
[Serializable]; everything else takes encoding/json's default structural
form.

*/
package encode
