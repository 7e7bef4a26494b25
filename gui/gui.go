// This file is part of Spherefill.
//
// Spherefill is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Spherefill is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Spherefill.  If not, see <https://www.gnu.org/licenses/>.

// Package gui defines the interface between the launch procedure and the
// concrete GUI implementation (see the sdlscene package).
package gui

import "fmt"

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// List of valid feature requests.
const (
	// bool argument: window occupies the whole display
	ReqFullScreen FeatureReq = "fullscreen"

	// bool argument: limit the frame rate even when vsync is unavailable
	ReqFPSCap FeatureReq = "fpscap"

	// int argument: the frame rate to limit to
	ReqFPS FeatureReq = "fps"
)

// FeatureReqData represents the information associated with a FeatureReq.
type FeatureReqData interface{}

// GUI defines the operations the launch procedure can request of a GUI
// implementation.
type GUI interface {
	// SetFeature is used to set a gui attribute
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// UnsupportedGuiFeature is returned by SetFeature implementations when the
// request is not recognised.
func UnsupportedGuiFeature(request FeatureReq) error {
	return fmt.Errorf("unsupported gui feature: %s", request)
}
