// Package api provides the REST API server for tonality
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/james-see/tonality/pkg/theory"
	"github.com/james-see/tonality/pkg/theory/chords"
	"github.com/james-see/tonality/pkg/theory/scales"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Tonality API
// @version 1.0
// @description API for music theory queries: scales, chords, intervals, and transposition
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return newRouter().Run(fmt.Sprintf(":%d", port))
}

func newRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/scales", listScales)
		v1.GET("/scales/:name", handleScale)
		v1.GET("/chords", listChords)
		v1.GET("/chords/:name", handleChord)
		v1.GET("/symbol", handleSymbol)
		v1.GET("/transpose", handleTranspose)
		v1.GET("/intervals", listIntervals)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "tonality",
	})
}

// listScales godoc
// @Summary List scale names
// @Description Returns every scale name in the catalog
// @Tags scales
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/scales [get]
func listScales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scales": scales.Names()})
}

// handleScale godoc
// @Summary Spell a scale on a root
// @Description Returns the pitches of a named scale built on a root pitch
// @Tags scales
// @Produce json
// @Param name path string true "Scale name, e.g. major"
// @Param root query string false "Root pitch (default: C4)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/scales/{name} [get]
func handleScale(c *gin.Context) {
	root, err := theory.ParsePitch(c.DefaultQuery("root", "C4"))
	if err != nil {
		badRequest(c, err)
		return
	}

	name := c.Param("name")
	if ds, ok := scales.DirectionalByName(name); ok {
		asc, err := ds.AscendingPitches(root)
		if err != nil {
			badRequest(c, err)
			return
		}
		desc, err := ds.DescendingPitches(root)
		if err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"scale":      name,
			"root":       root.String(),
			"ascending":  pitchNames(asc),
			"descending": pitchNames(desc),
		})
		return
	}

	s, ok := scales.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown scale: " + name})
		return
	}
	pitches, err := s.Pitches(root)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scale":     name,
		"root":      root.String(),
		"pitches":   pitchNames(pitches),
		"semitones": pitchSemitones(pitches),
	})
}

// listChords godoc
// @Summary List chord names
// @Description Returns every chord name in the catalog
// @Tags chords
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/chords [get]
func listChords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chords": chords.Names()})
}

// handleChord godoc
// @Summary Spell a chord on a root
// @Description Returns the pitches of a named chord built on a root pitch
// @Tags chords
// @Produce json
// @Param name path string true "Chord name, e.g. dominant seventh"
// @Param root query string false "Root pitch (default: C4)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/chords/{name} [get]
func handleChord(c *gin.Context) {
	root, err := theory.ParsePitch(c.DefaultQuery("root", "C4"))
	if err != nil {
		badRequest(c, err)
		return
	}

	name := c.Param("name")
	ch, ok := chords.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown chord: " + name})
		return
	}
	pitches, err := ch.Pitches(root)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chord":     name,
		"root":      root.String(),
		"pitches":   pitchNames(pitches),
		"semitones": pitchSemitones(pitches),
	})
}

// handleSymbol godoc
// @Summary Voice a chord symbol
// @Description Parses a chord symbol such as Am7 or Em/G and voices it in an octave
// @Tags chords
// @Produce json
// @Param q query string true "Chord symbol, e.g. Am7 or Em/G"
// @Param octave query int false "Root octave (default: 4)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/symbol [get]
func handleSymbol(c *gin.Context) {
	sym, err := chords.ParseSymbol(c.Query("q"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var octave theory.Octave = 4
	if raw := c.Query("octave"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, fmt.Errorf("bad octave %q", raw))
			return
		}
		octave, err = theory.NewOctave(n)
		if err != nil {
			badRequest(c, err)
			return
		}
	}

	pitches, err := sym.Voicing(octave)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":    c.Query("q"),
		"chord":     sym.Chord().Name(),
		"pitches":   pitchNames(pitches),
		"semitones": pitchSemitones(pitches),
	})
}

// handleTranspose godoc
// @Summary Transpose a pitch
// @Description Moves a pitch by an interval, given by short name (P5, m3) or signed semitones
// @Tags intervals
// @Produce json
// @Param pitch query string true "Pitch, e.g. C4"
// @Param by query string true "Interval, e.g. P5 or -3"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/transpose [get]
func handleTranspose(c *gin.Context) {
	pitch, err := theory.ParsePitch(c.Query("pitch"))
	if err != nil {
		badRequest(c, err)
		return
	}
	by, err := theory.ParseInterval(c.Query("by"))
	if err != nil {
		badRequest(c, err)
		return
	}
	result, err := pitch.Transpose(by)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pitch":     pitch.String(),
		"by":        by.String(),
		"result":    result.String(),
		"semitones": result.Semitones(),
	})
}

// listIntervals godoc
// @Summary List named intervals
// @Description Returns every interval within the octave with its quality, size, and semitone count
// @Tags intervals
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/intervals [get]
func listIntervals(c *gin.Context) {
	out := make([]gin.H, 0, int(theory.PerfectOctave)+1)
	for i := theory.PerfectUnison; i <= theory.PerfectOctave; i++ {
		q, s, _ := i.Name()
		out = append(out, gin.H{
			"name":      i.String(),
			"quality":   q.String(),
			"size":      s.String(),
			"semitones": i.Semitones(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"intervals": out})
}

// badRequest reports a domain error to the caller. Every error the theory
// and chords packages return through these handlers comes from request
// input, so they all map to 400.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func pitchNames(pitches []theory.Pitch) []string {
	out := make([]string, len(pitches))
	for i, p := range pitches {
		out[i] = p.String()
	}
	return out
}

func pitchSemitones(pitches []theory.Pitch) []int {
	out := make([]int, len(pitches))
	for i, p := range pitches {
		out[i] = p.Semitones()
	}
	return out
}
