// Package layout reads and writes grid layouts: the radius of a hex grid plus
// the labelled and disabled cells on it.
//
//	{
//	  "radius": 2,
//	  "cells": {
//	    "0,0,2": "aer",
//	    "2,2,0": "ignis",
//	    "1,0,1": "disabled"
//	  }
//	}
//
// Keys are canonical "x,y,z" coordinates; values are a label name or the
// reserved word "disabled". The same document may be written as YAML.
// FromGrid is the inverse of Build, so a solved grid can be stored in the
// format it was seeded from.
package layout
