package main

// @title ISS Tracker API
// @version 1.0
// @description REST API exposing the ISS orbital ephemeris and geographic quantities derived from it.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
