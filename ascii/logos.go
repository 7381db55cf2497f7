// Package ascii provides the cat logos shown next to the system summary.
// Logos are plain strings with 24-bit ANSI colour sequences embedded, so they
// can be printed verbatim and measured by the layout package.
package ascii

// Built-in logo type numbers accepted by Builtin.
const (
	BigCat = iota + 1
	SmallCat
	TinyCat

	// Default is used for any type number outside the known range.
	Default = BigCat
)

// bigCat is a 21-column, 9-row half-block portrait of a brown cat.
const bigCat = "" +
	"                     \n" +
	"    \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m     \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m    \n" +
	"   \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;253;171;214m\x1b[38;2;253;171;214m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;253;171;214m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;253;171;214m▄\x1b[0m\x1b[48;2;253;171;214m\x1b[38;2;253;171;214m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m   \n" +
	"  \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m  \n" +
	" \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m \n" +
	"\x1b[38;2;0;0;0m▀\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;8;27;94m\x1b[38;2;94;206;207m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;8;27;94m\x1b[38;2;94;206;207m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;47;29;12m▄\x1b[0m\x1b[48;2;164;150;136m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\n" +
	"\x1b[38;2;0;0;0m▀\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;47;29;12m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;86;70;55m▄\x1b[0m\x1b[48;2;86;70;55m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;164;150;136m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\n" +
	"  \x1b[38;2;0;0;0m▀\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;255;255;255m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m  \n" +
	"     \x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m     "

// smallCat is an 18-column grey cat with orange eyes.
const smallCat = "" +
	"                  \n" +
	"       \x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m     \x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m  \n" +
	"       \x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m  \n" +
	" \x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m  \x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m \n" +
	" \x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[38;2;0;0;0m▄\x1b[0m \x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;223;113;38m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;223;113;38m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m \n" +
	"  \x1b[38;2;0;0;0m▀\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m  \n" +
	"    \x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;49;49;49m\x1b[38;2;49;49;49m▄\x1b[0m\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m   \n" +
	"    \x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;49;49;49m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;49;49;49m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;49;49;49m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m\x1b[38;2;49;49;49m▀\x1b[0m\x1b[38;2;0;0;0m▀\x1b[0m   \n"

const tinyCat = "" +
	"\x1b[33m /\\_/\\  \x1b[0m\n" +
	"\x1b[33m( o.o ) \x1b[0m\n" +
	"\x1b[33m > ^ <  \x1b[0m\n"

var builtins = map[int]string{
	BigCat:   bigCat,
	SmallCat: smallCat,
	TinyCat:  tinyCat,
}

// Builtin returns the built-in logo registered under kind, falling back to
// the Default logo when kind is unknown.
func Builtin(kind int) string {
	if logo, ok := builtins[kind]; ok {
		return logo
	}
	return builtins[Default]
}
