// SPDX-License-Identifier: MIT

// Package config loads a simulation description from YAML and turns it
// into the values the library packages consume: a grid, a potential, an
// initial state, a refresh policy and the option sets for the solvers.
//
// Unknown keys are rejected so that typos fail loudly. Every field has a
// default (see Default), which reproduces the 1D browser animation:
// 512 sites, a Gaussian at the centre with p = 1, σ = 5, d = 20 and a
// refresh every 20 frames of dt = 0.2.
package config
