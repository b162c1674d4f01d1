/*

Package template parses the HTML shown when a JSON response cannot be formed:
a standalone exception page with named extension slots for styling and
content. Applications override the embedded default by pointing a Parser at
their own fs.FS.

*/
package template
