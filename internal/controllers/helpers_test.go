package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`1500`, "1500"},
		{`"1500"`, "1500"},
		{`"12.5 XAF"`, "12.5"},
		{`12.75`, "12.75"},
		{`"abc"`, "0"},
		{`""`, "0"},
		{`null`, "0"},
		{`"1e10000000"`, "0"},
		{`1e999999999`, "0"},
		{`"5e4"`, "50000"},
	}
	for _, tt := range tests {
		var a Amount
		if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.in, err)
		}
		if a.String() != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.in, tt.want, a.String())
		}
	}
}

func TestBusRefUnmarshal(t *testing.T) {
	var in struct {
		A BusRef `json:"a"`
		B BusRef `json:"b"`
		C BusRef `json:"c"`
		D BusRef `json:"d"`
		E BusRef `json:"e"`
		F BusRef `json:"f"`
	}
	if err := json.Unmarshal([]byte(`{"a":3,"b":" 4 ","c":"x","d":"1.9","e":"1abc","f":1.9}`), &in); err != nil {
		t.Fatal(err)
	}
	if in.A != 3 || in.B != 4 || in.C != 0 || in.D != 0 || in.E != 0 || in.F != 0 {
		t.Fatalf("unexpected refs %+v", in)
	}
}

func TestPeriodDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		query     string
		wantYear  int
		wantMonth time.Month
	}{
		{"", 2025, time.July},
		{"?month=3&year=2024", 2024, time.March},
		{"?month=13&year=2024", 2024, time.July},
		{"?month=abc&year=-1", 2025, time.July},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/reports/bilan"+tt.query, nil)
		p := period(c, now)
		if p.Year != tt.wantYear || p.Month != tt.wantMonth {
			t.Fatalf("%q: expected %d-%d, got %+v", tt.query, tt.wantYear, tt.wantMonth, p)
		}
	}
}
