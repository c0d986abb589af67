package constant

// AsciiArtLogo is the application's ASCII art banner shown on the root help screen.
const AsciiArtLogo = `
      _                 _
 _ __| |_ __ _ _ _ __ _| |__
| '__| __/ _` + "`" + ` | '_/ _` + "`" + ` | '_ \
| |  | || (_| | | | (_| | |_) |
|_|   \__\__, |_| \__,_|_.__/
         |___/
`
