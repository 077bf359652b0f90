// Package docs provides Swagger documentation for the API.
package docs

// @title Campaign Generator API
// @version 1.0
// @description Thai marketing campaign generation: previews, full multi-platform campaigns, calendars, ad schedules and exports
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.one-green.io/support
// @contact.email support@one-green.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
