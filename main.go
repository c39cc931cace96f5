package main

import "github.com/voicenotes/voicenote-api/cmd"

// @title           Voice Note API
// @version         1.0.0
// @description     Voice note processing API: upload, transcription, enhancement and persistence
// @contact.name    API Support
// @contact.url     https://github.com/voicenotes/voicenote-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
