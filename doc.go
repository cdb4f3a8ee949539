/*
 * doc.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


/*Package protview is the core of the protview protein viewer. It reads
PDB-format text into an atom, residue and chain model, classifies amino acids
and holds the per-element display data used by the 3D scene.


	**protview packages**


    protview: PDB reading (ATOM, HETATM, HELIX and SHEET records), quick format
	validation, protein name extraction and the residue classifier.

    v3: gonum-backed Nx3 coordinate matrices.

    params: ordered key/value parameters with typed values, used by scene nodes.

    scene: builds the drawable scene for a structure: filtered atoms, bonds,
	camera framing and highlight overlays. Drawing goes through the Graphics
	interface, so any backend can be used.

    pick: screen-to-world ray casting, atom picking and tooltip text.

    sites: user-defined binding sites, affinity descriptors and predicted sites.

    events: typed publish/subscribe between the viewer and its consumers.

    viewer: ties all of the above together and takes care of superseded builds.

    render: draws a scene to an image file using gonum/plot.

    upload: reads PDB files from disk, possibly compressed.

    config: viewer configuration from YAML.

The protview binary, in cmd/protview, gives command-line access to most of it.

*/
package protview
