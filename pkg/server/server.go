package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"colorclass/pkg/classify"
	"colorclass/pkg/color"
	"colorclass/pkg/colorclass"

	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"
)

var (
	errNotFound     = xerrors.New("unknown color name")
	errUnknownLabel = xerrors.New("unknown label")
)

type Server struct {
	Engine   *colorclass.Engine
	Listener net.Listener
}

type hsbJSON struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Brightness int `json:"brightness"`
}

type classification struct {
	Name   string  `json:"name,omitempty"`
	RGB    string  `json:"rgb"`
	HSB    hsbJSON `json:"hsb"`
	Label  string  `json:"label"`
	Family string  `json:"family"`

	// Set when the request names an expected label.
	Matches *bool `json:"matches,omitempty"`
}

type labelJSON struct {
	Label  string `json:"label"`
	Family string `json:"family"`
}

func toHsbJSON(h color.HSB) hsbJSON {
	return hsbJSON{Hue: h.Hue, Saturation: h.Saturation, Brightness: h.Brightness}
}

func writeJSONResponse(c *gin.Context, result interface{}, err error) {
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseChannel(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, xerrors.Errorf("failed to parse '%s': %w", name, err)
	}
	return v, nil
}

func (srv *Server) requestToRGB(c *gin.Context) (color.RGB, error) {
	if s, ok := c.GetQuery("color"); ok {
		return color.Parse(s)
	}
	var rgb [3]int
	for i, name := range []string{"r", "g", "b"} {
		v, err := parseChannel(c, name)
		if err != nil {
			return color.RGB{}, err
		}
		rgb[i] = v
	}
	return colorclass.RGB(rgb[0], rgb[1], rgb[2])
}

func (srv *Server) classify(name string, rgb color.RGB) classification {
	hsb, rule, ok := srv.Engine.Explain(rgb)
	label := classify.Unclassified
	if ok {
		label = rule.Label
	}
	return classification{
		Name:   name,
		RGB:    rgb.Hex(),
		HSB:    toHsbJSON(hsb),
		Label:  label.String(),
		Family: label.Family().String(),
	}
}

// expectedLabel reads the optional label parameter.
func expectedLabel(c *gin.Context) (classify.Label, bool, error) {
	s, ok := c.GetQuery("label")
	if !ok {
		return classify.Unclassified, false, nil
	}
	l, found := classify.ParseLabel(s)
	if !found {
		return classify.Unclassified, false, xerrors.Errorf("%q: %w", s, errUnknownLabel)
	}
	return l, true, nil
}

func (srv *Server) handleClassify(c *gin.Context) {
	want, check, err := expectedLabel(c)
	if err != nil {
		writeJSONResponse(c, nil, err)
		return
	}

	var result classification
	if name, ok := c.GetQuery("name"); ok {
		rgb, found := srv.Engine.Resolve(name)
		if !found {
			writeJSONResponse(c, nil, xerrors.Errorf("%q: %w", name, errNotFound))
			return
		}
		result = srv.classify(name, rgb)
	} else {
		rgb, err := srv.requestToRGB(c)
		if err != nil {
			writeJSONResponse(c, nil, err)
			return
		}
		result = srv.classify("", rgb)
	}

	if check {
		matches := result.Label == want.String()
		result.Matches = &matches
	}
	writeJSONResponse(c, result, nil)
}

func (srv *Server) handleLabels(c *gin.Context) {
	var out []labelJSON
	for _, l := range classify.Labels() {
		out = append(out, labelJSON{Label: l.String(), Family: l.Family().String()})
	}
	writeJSONResponse(c, out, nil)
}

func (srv *Server) handleHsb(c *gin.Context) {
	rgb, err := srv.requestToRGB(c)
	if err != nil {
		writeJSONResponse(c, nil, err)
		return
	}
	writeJSONResponse(c, toHsbJSON(color.ToHsb(rgb)), nil)
}

// Handler returns the routes served by srv.
func (srv *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/classify", srv.handleClassify)
	r.GET("/hsb", srv.handleHsb)
	r.GET("/labels", srv.handleLabels)
	return r
}

// shutdownWhenDone invokes http.Server.Shutdown when the given context is cancelled.
// This function will block until context cancellation.
func shutdownWhenDone(ctx context.Context, server *http.Server) {
	log.Print("server started")
	<-ctx.Done()

	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Print("terminating server")
	if err := server.Shutdown(c); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func (srv *Server) Serve(ctx context.Context) error {
	server := http.Server{
		Handler: srv.Handler(),
	}

	go shutdownWhenDone(ctx, &server)

	err := server.Serve(srv.Listener)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Print("server stopped")
	return nil
}
